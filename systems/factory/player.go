package factory

import (
	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y). It starts in Setup,
// facing right, ungrounded until the first resolved step.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	hw, hh := cfg.Player.HalfWidth, cfg.Player.HalfHeight
	obj := resolv.NewObject(x-hw, y-hh, hw*2, hh*2)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, hw*2, hh*2))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.FacingRight,
		SpawnX: x,
		SpawnY: y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Setup,
		PendingState:  cfg.Setup,
		PreviousState: cfg.Setup,
	})
	components.Body.SetValue(player, components.BodyData{
		HalfWidth:      hw,
		HalfHeight:     hh,
		Mass:           cfg.Player.Mass,
		AngularDamping: cfg.Player.AngularDamping,
	})
	components.Intents.SetValue(player, components.IntentQueue{
		Pending: make([]components.Intent, 0, 4),
	})
	components.Animation.SetValue(player, GenerateAnimations(cfg.Player.FrameWidth, cfg.Player.FrameHeight))

	// Kinematic stand-in so the rigid-body world feels the player.
	if space := rigidSpace(ecs); space != nil {
		body := space.AddBody(cp.NewKinematicBody())
		body.SetPosition(cp.Vector{X: x, Y: y})
		shape := cp.NewBox(body, hw*2, hh*2, 0)
		shape.SetFriction(cfg.Boulder.Friction)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryPlayer, tags.CategoryBoulder))
		space.AddShape(shape)
		components.RigidBody.SetValue(player, components.RigidBodyData{Body: body, Shape: shape})
	}

	return player
}

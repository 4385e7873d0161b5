package systems

import (
	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoulder steps the rigid-body world. The player's kinematic proxy is
// driven by the attempted translation so it shoves the boulder, then pinned
// back onto the resolved player position.
func UpdateBoulder(ecs *ecs.ECS) {
	worldEntry, ok := components.RigidWorld.First(ecs.World)
	if !ok {
		return
	}
	space := components.RigidWorld.Get(worldEntry).Space
	if space == nil {
		return
	}
	dt := deltaTime(ecs)

	player, hasPlayer := playerEntry(ecs)
	var proxy *cp.Body
	if hasPlayer {
		proxy = components.RigidBody.Get(player).Body
	}
	if proxy != nil {
		box := playerBox(player)
		desired := components.Body.Get(player).Feedback.DesiredTranslation
		proxy.SetPosition(cp.Vector{X: box.X, Y: box.Y})
		proxy.SetVelocity(desired.X/dt, 0)
	}

	space.Step(dt)

	if proxy != nil {
		box := playerBox(player)
		proxy.SetPosition(cp.Vector{X: box.X, Y: box.Y})
	}

	if boulder, ok := boulderEntry(ecs); ok {
		rb := components.RigidBody.Get(boulder)
		if rb.Body == nil {
			return
		}
		p := rb.Body.Position()
		r := components.Boulder.Get(boulder).Radius
		obj := components.Object.Get(boulder)
		obj.X = p.X - r
		obj.Y = p.Y - r
		obj.Update()
	}
}

// SetBoulderFrozen switches the boulder between Fixed and Dynamic.
func SetBoulderFrozen(ecs *ecs.ECS, frozen bool) {
	boulder, ok := boulderEntry(ecs)
	if !ok {
		return
	}
	data := components.Boulder.Get(boulder)
	if data.Frozen == frozen {
		return
	}
	data.Frozen = frozen

	body := components.RigidBody.Get(boulder).Body
	if body == nil {
		return
	}
	if frozen {
		body.SetType(cp.BODY_STATIC)
		return
	}
	body.SetType(cp.BODY_DYNAMIC)
	body.SetMass(cfg.Boulder.Mass)
	body.SetMoment(cp.MomentForCircle(cfg.Boulder.Mass, 0, data.Radius, cp.Vector{}))
	body.Activate()
}

// BoulderAngle returns the boulder's rotation in radians, clockwise on screen.
func BoulderAngle(ecs *ecs.ECS) float64 {
	boulder, ok := boulderEntry(ecs)
	if !ok {
		return 0
	}
	if body := components.RigidBody.Get(boulder).Body; body != nil {
		return body.Angle()
	}
	return 0
}

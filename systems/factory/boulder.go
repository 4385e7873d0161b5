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

// CreateBoulder spawns the boulder centred on (x, y) as a dynamic circle.
func CreateBoulder(ecs *ecs.ECS, x, y, radius float64) *donburi.Entry {
	boulder := archetypes.Boulder.Spawn(ecs)

	obj := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tags.ResolvBoulder)
	obj.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	obj.Data = boulder
	components.Object.SetValue(boulder, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Boulder.SetValue(boulder, components.BoulderData{Radius: radius})

	if space := rigidSpace(ecs); space != nil {
		moment := cp.MomentForCircle(cfg.Boulder.Mass, 0, radius, cp.Vector{})
		body := space.AddBody(cp.NewBody(cfg.Boulder.Mass, moment))
		body.SetPosition(cp.Vector{X: x, Y: y})
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetFriction(cfg.Boulder.Friction)
		shape.SetElasticity(cfg.Boulder.Elasticity)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryBoulder, cp.ALL_CATEGORIES))
		space.AddShape(shape)
		components.RigidBody.SetValue(boulder, components.RigidBodyData{Body: body, Shape: shape})
	}

	return boulder
}

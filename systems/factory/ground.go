package factory

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateGroundSegment creates one straight piece of hill from a to b
// (screen space, a left of b). The controller sees a ramp strip
// cfg.Terrain.Depth thick below the surface; the rigid-body world sees a
// static segment.
func CreateGroundSegment(ecs *ecs.ECS, a, b dmath.Vec2) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Segment.SetValue(ground, components.SegmentData{A: a, B: b})

	top := math.Min(a.Y, b.Y)
	w := b.X - a.X
	h := math.Abs(b.Y-a.Y) + cfg.Terrain.Depth
	obj := resolv.NewObject(a.X, top, w, h, tags.ResolvRamp)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	if space := rigidSpace(ecs); space != nil {
		shape := cp.NewSegment(space.StaticBody, cp.Vector{X: a.X, Y: a.Y}, cp.Vector{X: b.X, Y: b.Y}, 0)
		shape.SetFriction(cfg.Boulder.Friction)
		shape.SetElasticity(cfg.Boulder.Elasticity)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryTerrain, cp.ALL_CATEGORIES))
		space.AddShape(shape)
		components.RigidBody.SetValue(ground, components.RigidBodyData{Body: space.StaticBody, Shape: shape})
	}

	return ground
}

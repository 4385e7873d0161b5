package factory

import (
	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/components"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid box. The rigid-body world only gets its right
// face, which is the side the boulder can roll into.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	if space := rigidSpace(ecs); space != nil {
		shape := cp.NewSegment(space.StaticBody, cp.Vector{X: x + w, Y: y}, cp.Vector{X: x + w, Y: y + h}, 0)
		shape.SetFriction(1)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryTerrain, cp.ALL_CATEGORIES))
		space.AddShape(shape)
		components.RigidBody.SetValue(wall, components.RigidBodyData{Body: space.StaticBody, Shape: shape})
	}

	return wall
}

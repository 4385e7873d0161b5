package factory

import (
	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, &components.SpaceData{Space: spaceData})
	return space
}

// CreateRigidWorld creates the rigid-body simulation the boulder lives in.
// It shares the resolv space's y-down coordinates.
func CreateRigidWorld(ecs *ecs.ECS) *donburi.Entry {
	world := archetypes.RigidWorld.Spawn(ecs)
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.Gravity})
	space.Iterations = uint(cfg.Physics.Iterations)
	space.SetDamping(cfg.Physics.Damping)
	components.RigidWorld.SetValue(world, components.RigidWorldData{Space: space})
	return world
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func rigidSpace(ecs *ecs.ECS) *cp.Space {
	if worldEntry, ok := components.RigidWorld.First(ecs.World); ok {
		return components.RigidWorld.Get(worldEntry).Space
	}
	return nil
}

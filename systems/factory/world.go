package factory

import (
	"github.com/lofi/sisyphus-simulator/assets"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld spawns everything a run needs from a parsed level: collision
// spaces, the hill, the player, the boulder and its marker, and the camera.
// The space must exist before anything that registers colliders.
func CreateWorld(ecs *ecs.ECS, level *assets.Level, seed int64) {
	CreateSpace(ecs, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	CreateRigidWorld(ecs)
	CreateLevel(ecs, level, seed)

	CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	CreateBoulder(ecs, level.BoulderSpawn.X, level.BoulderSpawn.Y, level.BoulderSpawn.Radius)
	CreateFatigueMarker(ecs)

	// Snap the camera to the spawn so the first frame does not pan from (0,0)
	camera := components.Camera.Get(CreateCamera(ecs))
	camera.Position.X = level.PlayerSpawn.X
	camera.Position.Y = level.PlayerSpawn.Y
}

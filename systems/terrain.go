package systems

import (
	"math"

	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/lofi/sisyphus-simulator/systems/factory"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateTerrain grows the hill ahead of the player whenever the player
// tries to move.
func UpdateTerrain(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	if components.Body.Get(player).Feedback.DesiredTranslation.X == 0 {
		return
	}
	PrimeTerrain(ecs)
}

// PrimeTerrain generates ground up to LookAhead past the player.
func PrimeTerrain(ecs *ecs.ECS) int {
	terrainEntry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return 0
	}
	player, ok := playerEntry(ecs)
	if !ok {
		return 0
	}
	terrain := components.Terrain.Get(terrainEntry)
	return ExtendTerrain(ecs, terrain, playerBox(player).X+cfg.Terrain.LookAhead)
}

// ExtendTerrain appends ground segments until the surface reaches x = until
// or the level limit. It returns how many were added.
func ExtendTerrain(ecs *ecs.ECS, terrain *components.TerrainData, until float64) int {
	added := 0
	for len(terrain.Surface) > 0 {
		end := terrain.End()
		if end.X >= until || end.X+cfg.Terrain.SegmentWidth > terrain.Limit {
			break
		}
		next := NextSurfacePoint(terrain, end)
		factory.CreateGroundSegment(ecs, end, next)
		terrain.Surface = append(terrain.Surface, next)
		terrain.Segments++
		added++
	}
	return added
}

// NextSurfacePoint continues the hill by one segment. The incline wanders
// around the base slope by at most JitterDeg.
func NextSurfacePoint(terrain *components.TerrainData, from dmath.Vec2) dmath.Vec2 {
	deg := cfg.Terrain.SlopeDegrees
	if terrain.Noise != nil {
		n := terrain.Noise.Noise1D(float64(terrain.Segments) * cfg.Terrain.NoiseScale)
		deg += cfg.Terrain.JitterDeg * gamemath.Clamp(n*2, -1, 1)
	}
	w := cfg.Terrain.SegmentWidth
	return dmath.Vec2{
		X: from.X + w,
		Y: from.Y - w*math.Tan(deg*math.Pi/180),
	}
}

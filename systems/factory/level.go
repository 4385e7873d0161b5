package factory

import (
	"github.com/aquilax/go-perlin"
	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/assets"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateLevel builds the authored part of the hill: walls and the initial
// ground polyline. The terrain generator continues from the last point.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, seed int64) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Y, w.Width, w.Height)
	}

	surface := make([]dmath.Vec2, 0, len(level.Ground))
	surface = append(surface, level.Ground[0])
	for i := 1; i < len(level.Ground); i++ {
		a, b := level.Ground[i-1], level.Ground[i]
		if b.X <= a.X {
			continue
		}
		CreateGroundSegment(ecs, a, b)
		surface = append(surface, b)
	}

	components.Terrain.SetValue(entry, components.TerrainData{
		Noise:    perlin.NewPerlin(cfg.Terrain.NoiseAlpha, cfg.Terrain.NoiseBeta, cfg.Terrain.NoiseN, seed),
		Surface:  surface,
		Segments: len(surface) - 1,
		Limit:    float64(level.Width),
	})

	return entry
}

package systems

import (
	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/yohamta/donburi/ecs"
)

// rayStartLift starts the ray just inside the feet so ground the body is
// resting on is still hit.
const rayStartLift = 2.0

var terrainQuery = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, tags.CategoryTerrain)

// UpdateSlopeAlignment casts a ray down from the feet and eases the body's
// rotation toward the surface angle. Nothing changes while airborne or when
// the ray misses.
func UpdateSlopeAlignment(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	body := components.Body.Get(player)
	if !body.Feedback.Grounded {
		return
	}

	target, hit := SlopeUnderPlayer(ecs)
	if !hit {
		return
	}
	body.Rotation = gamemath.BlendAngle(body.Rotation, target, cfg.Slope.Blend)
}

// SlopeUnderPlayer returns the rotation that would align the player with
// the ground below its feet.
func SlopeUnderPlayer(ecs *ecs.ECS) (float64, bool) {
	player, ok := playerEntry(ecs)
	if !ok {
		return 0, false
	}
	worldEntry, ok := components.RigidWorld.First(ecs.World)
	if !ok {
		return 0, false
	}
	space := components.RigidWorld.Get(worldEntry).Space
	if space == nil {
		return 0, false
	}

	box := playerBox(player)
	feet := box.Y + box.HalfH
	start := cp.Vector{X: box.X, Y: feet - rayStartLift}
	end := cp.Vector{X: box.X, Y: feet + cfg.Slope.RayLength}

	info := space.SegmentQueryFirst(start, end, 0, terrainQuery)
	if info.Shape == nil {
		return 0, false
	}
	// The rigid-body world is y-down.
	return gamemath.SlopeAngle(info.Normal.X, -info.Normal.Y), true
}

package systems

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMarker keeps the fatigue icon above the player's head and picks the
// icon for the current fatigue bucket.
func UpdateMarker(ecs *ecs.ECS) {
	markerEntry, ok := tags.Marker.First(ecs.World)
	if !ok {
		return
	}
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	marker := components.Marker.Get(markerEntry)
	fatigue := components.Fatigue.Get(player)

	marker.Icon = gamemath.FatigueBucket(fatigue.Value, cfg.Marker.Thresholds)
	marker.BobOffset = stepBob(marker, float32(deltaTime(ecs)))

	box := playerBox(player)
	marker.Position = math.Vec2{
		X: box.X + marker.OffsetX,
		Y: box.Y + marker.OffsetY + marker.BobOffset,
	}
}

// stepBob advances the bob tween and flips its direction at each end.
func stepBob(marker *components.MarkerData, dt float32) float64 {
	if marker.Bob == nil {
		marker.Bob = newBob(marker.BobUp)
	}
	offset, finished := marker.Bob.Update(dt)
	if finished {
		marker.BobUp = !marker.BobUp
		marker.Bob = newBob(marker.BobUp)
	}
	return float64(offset)
}

func newBob(up bool) *gween.Tween {
	h := float32(cfg.Marker.BobHeight)
	if up {
		return gween.New(0, -h, cfg.Marker.BobDuration, ease.InOutSine)
	}
	return gween.New(-h, 0, cfg.Marker.BobDuration, ease.InOutSine)
}

package systems

import (
	"math"

	"github.com/lofi/sisyphus-simulator/components"
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the player, sitting a fixed fraction of the screen
// above it, and never shows past the level edges.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	player, ok := playerEntry(e)
	if !ok {
		return
	}
	box := playerBox(player)

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	targetX := box.X
	targetY := box.Y - screenHeight*config.Camera.OffsetYFactor

	// The left edge of the level stays at the left edge of the screen.
	targetX = math.Max(screenWidth/2, targetX)
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			targetX = math.Min(float64(level.Width)-screenWidth/2, targetX)
			targetY = math.Max(screenHeight/2, math.Min(float64(level.Height)-screenHeight/2, targetY))
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// WorldToScreen converts a world position into screen coordinates for the camera.
func WorldToScreen(camera *components.CameraData, p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: p.X - camera.Position.X + float64(config.C.Width)/2,
		Y: p.Y - camera.Position.Y + float64(config.C.Height)/2,
	}
}

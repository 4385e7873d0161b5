package systems

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestCameraFollowsPlayerWithinLevel(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(2000), standing(3000)))
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(entry)

	UpdateCamera(e)
	box := playerBox(mustPlayer(t, e))
	assert.InDelta(t, box.X, camera.Position.X, 1e-9)

	// Near the left edge the camera stops at half a screen.
	components.Object.Get(mustPlayer(t, e)).X = 10
	UpdateCamera(e)
	assert.InDelta(t, float64(cfg.C.Width)/2, camera.Position.X, 1e-9)
	assert.LessOrEqual(t, camera.Position.Y, 1024-float64(cfg.C.Height)/2)
}

func TestWorldToScreenCentresCamera(t *testing.T) {
	camera := &components.CameraData{Position: math.Vec2{X: 1000, Y: 500}}
	got := WorldToScreen(camera, math.Vec2{X: 1000, Y: 500})
	assert.Equal(t, math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2}, got)
}

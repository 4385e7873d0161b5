package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	camera, ok := cameraData(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		viewX := camera.Position.X - float64(width)/2
		viewY := camera.Position.Y - float64(height)/2
		viewW := float64(width)
		viewH := float64(height)

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
				continue
			}

			x := obj.X + camX
			y := obj.Y + camY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Blue
			} else if obj.HasTags(tags.ResolvBoulder) {
				c = cfg.Magenta
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if boulder, ok := boulderEntry(ecs); ok {
		circle := boulderCircle(boulder)
		vector.StrokeCircle(screen, float32(circle.X+camX), float32(circle.Y+camY), float32(circle.R), 1, cfg.Red, true)
	}

	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	state := components.State.Get(player)
	body := components.Body.Get(player)
	msg := fmt.Sprintf("state: %s\nfatigue: %.2f\ngrounded: %t\nrotation: %.3f\ncontact: %t",
		state.CurrentState,
		components.Fatigue.Get(player).Value,
		body.Feedback.Grounded,
		body.Rotation,
		components.Contact.Get(player).Touching,
	)
	ebitenutil.DebugPrintAt(screen, msg, width-180, 10)
}

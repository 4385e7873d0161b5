package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/fonts"
	"github.com/yohamta/donburi/ecs"
)

var bestDistance float64

// SetBestDistance sets the record shown in the HUD.
func SetBestDistance(distance float64) {
	bestDistance = distance
}

// DrawHUD renders the distance counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	margin := int(config.HUD.Margin)

	lines := []string{
		fmt.Sprintf("Distance: %.1f m", DistanceMetres(Distance(ecs))),
		fmt.Sprintf("Best: %.1f m", DistanceMetres(bestDistance)),
	}
	for i, line := range lines {
		y := margin + (i+1)*20
		text.Draw(screen, line, face, margin+1, y+1, config.HUD.ShadowColor)
		text.Draw(screen, line, face, margin, y, config.HUD.TextColor)
	}
}

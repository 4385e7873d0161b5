package factory

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
)

// GenerateAnimations creates the player's AnimationData starting on the
// Setup clip. Sheets are resolved by id when drawing.
func GenerateAnimations(frameWidth, frameHeight int) components.AnimationData {
	animData := components.AnimationData{
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
	}
	animData.SetAnimation(cfg.ClipSetup, cfg.PlayerAnimations[cfg.ClipSetup])
	return animData
}

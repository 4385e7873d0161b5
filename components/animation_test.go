package components

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAnimationIsIdempotent(t *testing.T) {
	var a AnimationData
	walk := config.PlayerAnimations[config.ClipWalk]

	a.SetAnimation(config.ClipWalk, walk)
	require.NotNil(t, a.CurrentAnimation)
	anim := a.CurrentAnimation

	for i := 0; i < 20; i++ {
		anim.Update()
	}
	frame := anim.Frame()

	a.SetAnimation(config.ClipWalk, walk)
	assert.Same(t, anim, a.CurrentAnimation)
	assert.Equal(t, frame, a.CurrentAnimation.Frame(), "re-applying the same range must not restart")
	assert.Equal(t, config.SheetPlayerWalk, a.CurrentSheet)
}

func TestSetAnimationSwitchesSheet(t *testing.T) {
	var a AnimationData
	a.SetAnimation(config.ClipWalk, config.PlayerAnimations[config.ClipWalk])
	for i := 0; i < 30; i++ {
		a.CurrentAnimation.Update()
	}

	push := config.PlayerAnimations[config.ClipPush]
	a.SetAnimation(config.ClipPush, push)
	assert.Equal(t, config.SheetPlayerPush, a.CurrentSheet)
	assert.Equal(t, config.ClipPush, a.CurrentClip)
	assert.Equal(t, push.First, a.CurrentAnimation.Frame())
	assert.Equal(t, push.Last, a.CurrentAnimation.Last)
}

func TestSetupAndIdleShareSheetButNotRange(t *testing.T) {
	var a AnimationData
	a.SetAnimation(config.ClipSetup, config.PlayerAnimations[config.ClipSetup])
	assert.Equal(t, 0, a.CurrentAnimation.Last)

	a.SetAnimation(config.ClipIdle, config.PlayerAnimations[config.ClipIdle])
	assert.Equal(t, config.PlayerAnimations[config.ClipIdle].Last, a.CurrentAnimation.Last)
}

package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tick(a *Animation, n int) {
	for i := 0; i < n; i++ {
		a.Update()
	}
}

func TestAnimationAdvancesEverySpeedTicks(t *testing.T) {
	a := NewAnimation(0, 3, 1, 2)
	assert.Equal(t, 0, a.Frame())

	// counter starts at 2 and fires once it drops below zero
	tick(a, 2)
	assert.Equal(t, 0, a.Frame())
	tick(a, 1)
	assert.Equal(t, 1, a.Frame())
	tick(a, 3)
	assert.Equal(t, 2, a.Frame())
}

func TestAnimationWrapsToFirst(t *testing.T) {
	a := NewAnimation(2, 4, 1, 0)
	frames := []int{}
	for i := 0; i < 6; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{3, 4, 2, 3, 4, 2}, frames)
	assert.True(t, a.Looped)
}

func TestAnimationOutOfRangeFrameWrapsOnNextFire(t *testing.T) {
	a := NewAnimation(0, 7, 1, 0)
	tick(a, 5)
	assert.Equal(t, 5, a.Frame())

	a.SetRange(0, 3, 1, 0)
	assert.Equal(t, 5, a.Frame(), "range change alone keeps the frame")
	a.Update()
	assert.Equal(t, 0, a.Frame())

	a.SetRange(6, 7, 1, 0)
	a.Update()
	assert.Equal(t, 6, a.Frame(), "frame below First also wraps")
}

func TestAnimationSingleFrame(t *testing.T) {
	a := NewAnimation(0, 0, 1, 0)
	tick(a, 10)
	assert.Equal(t, 0, a.Frame())
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(1, 5, 1, 0)
	tick(a, 3)
	a.Restart()
	assert.Equal(t, 1, a.Frame())
	assert.False(t, a.Looped)
}

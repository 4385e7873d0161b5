package systems

import (
	"testing"

	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestFadeOutWithoutMusicIsNoop(t *testing.T) {
	FadeOutMusic(nil)
	assert.Nil(t, mixer.fade)
}

func TestFadeReleasesTrackWhenDone(t *testing.T) {
	defer closeMusic()
	mixer.musicKey = cfg.Sound.HillMusic
	mixer.fade = gween.New(1, 0, 0.5, ease.Linear)

	stepFade(0.25)
	assert.NotNil(t, mixer.fade)
	assert.Equal(t, cfg.Sound.HillMusic, mixer.musicKey)

	stepFade(0.25)
	assert.Nil(t, mixer.fade)
	assert.Empty(t, mixer.musicKey)
}

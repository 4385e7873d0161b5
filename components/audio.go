package components

import (
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
)

// AudioData is the per-scene view of the mixer. Systems queue sounds here;
// UpdateAudio drains the queue every tick.
type AudioData struct {
	MusicVolume float64
	SFXVolume   float64
	MusicKey    string
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

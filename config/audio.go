package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHurt
	SoundPush
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFade       float32 // seconds
	PushSFXInterval int     // frames between push grunts while pushing
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	HillMusic         string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.25,
		DefaultSFXVol:   0.8,
		MusicFade:       1,
		PushSFXInterval: 45,
	}

	Sound = SoundConfig{
		HillMusic: "audio/music/hill.wav",
		SFXPaths: map[SoundID]string{
			SoundHurt:         "audio/sfx/hurt.wav",
			SoundPush:         "audio/sfx/push.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPush: 0.5,
		},
	}
}

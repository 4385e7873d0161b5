package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/lofi/sisyphus-simulator/assets"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// mixer outlives scenes: the hill track keeps playing into the give-up
// screen while it fades.
var mixer struct {
	once   sync.Once
	ctx    *audio.Context
	loader *assets.AudioLoader

	music    *audio.Player
	musicKey string
	fade     *gween.Tween

	musicVolume float64
	sfxVolume   float64
}

func init() {
	mixer.musicVolume = cfg.Audio.DefaultMusicVol
	mixer.sfxVolume = cfg.Audio.DefaultSFXVol
}

func initGlobalAudio() {
	mixer.once.Do(func() {
		mixer.ctx = audio.NewContext(cfg.Audio.SampleRate)
		mixer.loader = assets.NewAudioLoader(mixer.ctx)
	})
}

// PreloadAllSFX decodes the push, hurt and menu sounds before the climb starts.
func PreloadAllSFX() {
	initGlobalAudio()
	for _, path := range cfg.Sound.SFXPaths {
		if err := mixer.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio advances the music fade and plays every queued sound.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	stepFade(1 / float32(cfg.C.TPS))

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.MusicVolume = mixer.musicVolume
	audioData.SFXVolume = mixer.sfxVolume
	audioData.MusicKey = mixer.musicKey
	for _, sound := range audioData.PendingSFX {
		playSFX(sound)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func stepFade(dt float32) {
	if mixer.fade == nil {
		return
	}
	level, done := mixer.fade.Update(dt)
	if mixer.music != nil {
		mixer.music.SetVolume(mixer.musicVolume * float64(level))
	}
	if done {
		closeMusic()
	}
}

func closeMusic() {
	if mixer.music != nil {
		_ = mixer.music.Close()
	}
	mixer.music = nil
	mixer.musicKey = ""
	mixer.fade = nil
}

func playSFX(sound cfg.SoundID) {
	if mixer.sfxVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok {
		return
	}
	player, err := mixer.loader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := mixer.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayMusic loops the track at musicPath. A track that is fading out is
// restarted from the top.
func PlayMusic(e *ecs.ECS, musicPath string) {
	initGlobalAudio()
	if mixer.musicKey == musicPath && mixer.fade == nil {
		return
	}
	closeMusic()

	player, err := mixer.loader.LoadMusic(musicPath)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	player.SetVolume(mixer.musicVolume)
	player.Play()
	mixer.music = player
	mixer.musicKey = musicPath
}

// FadeOutMusic lowers the current track to silence over cfg.Audio.MusicFade
// and then closes it.
func FadeOutMusic(e *ecs.ECS) {
	if mixer.music == nil {
		return
	}
	mixer.fade = gween.New(1, 0, cfg.Audio.MusicFade, ease.Linear)
}

func PauseMusic(e *ecs.ECS) {
	if mixer.music != nil {
		mixer.music.Pause()
	}
}

func ResumeMusic(e *ecs.ECS) {
	if mixer.music != nil {
		mixer.music.Play()
	}
}

// PlaySFX queues a sound; UpdateAudio plays the queue.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

func SetMusicVolume(e *ecs.ECS, volume float64) {
	mixer.musicVolume = volume
	if mixer.music != nil && mixer.fade == nil {
		mixer.music.SetVolume(volume)
	}
}

func SetSFXVolume(e *ecs.ECS, volume float64) {
	mixer.sfxVolume = volume
}

// GetOrCreateAudio returns this scene's audio singleton.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: mixer.musicVolume,
			SFXVolume:   mixer.sfxVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// UpdateVolumeKeys lowers, raises or mutes every channel and persists the result.
func UpdateVolumeKeys(e *ecs.ECS) {
	input := getOrCreateInput(e)
	step := cfg.Input.VolumeStep

	var changed bool
	switch {
	case GetAction(input, cfg.ActionMute).JustPressed:
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
		changed = true
	case GetAction(input, cfg.ActionVolumeDown).JustPressed:
		SetMusicVolume(e, gamemath.Clamp(mixer.musicVolume-step, 0, 1))
		SetSFXVolume(e, gamemath.Clamp(mixer.sfxVolume-step, 0, 1))
		changed = true
	case GetAction(input, cfg.ActionVolumeUp).JustPressed:
		SetMusicVolume(e, gamemath.Clamp(mixer.musicVolume+step, 0, 1))
		SetSFXVolume(e, gamemath.Clamp(mixer.sfxVolume+step, 0, 1))
		changed = true
	}
	if changed {
		SaveCurrentSettings()
	}
}

// UpdatePlayerSounds plays the hurt cry on entering Hurt and a grunt at a
// fixed interval while pushing.
func UpdatePlayerSounds(e *ecs.ECS) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	state := components.State.Get(player)
	session := sessionData(e)

	if state.CurrentState == cfg.Hurt && state.StateTimer == 0 {
		PlaySFX(e, cfg.SoundHurt)
	}

	if state.CurrentState != cfg.Push {
		session.PushSFXTimer = 0
		return
	}
	if session.PushSFXTimer <= 0 {
		PlaySFX(e, cfg.SoundPush)
		session.PushSFXTimer = cfg.Audio.PushSFXInterval
	}
	session.PushSFXTimer--
}

package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/fonts"
	"github.com/yohamta/donburi/ecs"
)

const pauseOptionCount = int(components.MenuGiveUp) + 1

// UpdatePause toggles the pause menu and runs Back / Give Up. It reads the
// input polled this tick, so it is registered after UpdateInput.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
		return
	}
	if !pause.IsPaused {
		return
	}

	switch {
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		pause.SelectedOption = cycleOption(pause.SelectedOption, -1)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		pause.SelectedOption = cycleOption(pause.SelectedOption, 1)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		PlaySFX(ecs, cfg.SoundMenuSelect)
		if pause.SelectedOption == components.MenuGiveUp {
			RequestGiveUp(ecs)
			return
		}
		SetPaused(ecs, false)
	}
}

func cycleOption(option components.PauseMenuOption, delta int) components.PauseMenuOption {
	return components.PauseMenuOption((int(option) + delta + pauseOptionCount) % pauseOptionCount)
}

// SetPaused pauses or resumes the climb. The boulder is held Fixed and the
// music is paused until play resumes.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	SetBoulderFrozen(ecs, paused)

	session := sessionData(ecs)
	if paused {
		pause.SelectedOption = components.MenuBack
		session.State = cfg.GamePause
		PauseMusic(ecs)
		return
	}
	session.State = cfg.GameInGame
	ResumeMusic(ecs)
}

// DrawPause dims the hill and lists the pause options.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)

	rowHeight := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (float64(h) - float64(len(cfg.Pause.MenuOptions))*rowHeight) / 2
	centreX := float64(w) / 2

	drawCentred(screen, "Paused", fonts.Title, centreX, top-60, cfg.Pause.TitleColor)
	for i, option := range cfg.Pause.MenuOptions {
		c := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			c = cfg.Pause.TextColorSelected
		}
		drawCentred(screen, option, fonts.Bold, centreX, top+float64(i)*rowHeight, c)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	if getOrCreateInput(ecs).LastInputMethod == components.InputGamepad {
		hint = "D-Pad: Navigate   A: Select   Start: Resume"
	}
	drawCentred(screen, hint, fonts.Small, centreX, float64(h)-28, cfg.Pause.TextColorNormal)
}

func drawCentred(screen *ebiten.Image, s string, font fonts.FontName, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, text.NewGoXFace(font.Get()), op)
}

// WithGameplayChecks skips system while the climb is paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the pause singleton, creating it unpaused.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(entry, components.PauseData{SelectedOption: components.MenuBack})
	}
	return components.Pause.Get(entry)
}

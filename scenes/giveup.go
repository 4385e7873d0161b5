package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/systems"
	"github.com/lofi/sisyphus-simulator/ui"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GiveUpResult is what the run leaves behind for the give-up screen.
type GiveUpResult struct {
	Distance  float64 // steps spent pushing
	Best      float64
	NewRecord bool
}

// GiveUpScene shows how far the boulder got and offers another try.
type GiveUpScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       GiveUpResult
	giveUpUI     *ui.ScreenUI
	titleFade    *gween.Tween
	titleAlpha   float32
	once         sync.Once
	action       menuAction
}

func NewGiveUpScene(sc SceneChanger, result GiveUpResult) *GiveUpScene {
	return &GiveUpScene{sceneChanger: sc, result: result}
}

func (gs *GiveUpScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.giveUpUI.Update()

	gs.titleAlpha, _ = gs.titleFade.Update(1 / float32(cfg.C.TPS))

	if systems.MenuSelectPressed(gs.ecs) {
		gs.action = menuPlay
	}

	switch gs.action {
	case menuPlay:
		// Cleanup is the fresh scene: distance starts from zero with a new world
		flow := gs.sceneChanger.Flow()
		flow.mustTransition(cfg.GameCleanup)
		gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger))
	case menuQuit:
		gs.sceneChanger.Quit()
	}
	gs.action = menuNone
}

func (gs *GiveUpScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.giveUpUI == nil {
		return
	}
	gs.giveUpUI.UI.Draw(screen)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2-180)
	op.ColorScale.ScaleWithColor(cfg.Menu.TitleColor)
	op.ColorScale.ScaleAlpha(gs.titleAlpha)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	text.Draw(screen, cfg.Menu.GiveUpTitle, gs.giveUpUI.TitleFace, op)
}

func (gs *GiveUpScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateVolumeKeys)

	gs.titleFade = gween.New(0, 1, 1, ease.OutQuad)
	gs.giveUpUI = ui.NewScreenUI("", gs.lines(), cfg.Menu.VolumeHint, []ui.Button{
		{Label: "Try again", OnClick: func() { gs.action = menuPlay }},
		{Label: "Quit", OnClick: func() { gs.action = menuQuit }},
	})
}

func (gs *GiveUpScene) lines() []string {
	metres := systems.DistanceMetres(gs.result.Distance)
	lines := []string{fmt.Sprintf("You pushed the boulder %.1f m", metres)}
	if gs.result.NewRecord {
		lines = append(lines, "New best!")
	} else {
		lines = append(lines, fmt.Sprintf("Best: %.1f m", systems.DistanceMetres(gs.result.Best)))
	}
	if phrase := pickPhrase(metres, rand.Intn); phrase != "" {
		lines = append(lines, phrase)
	}
	return lines
}

// pickPhrase returns an encouragement once the run passed the phrase
// threshold, or "" otherwise.
func pickPhrase(metres float64, intn func(int) int) string {
	phrases := cfg.Session.Phrases
	if metres <= cfg.Session.PhraseThreshold || len(phrases) == 0 {
		return ""
	}
	return phrases[intn(len(phrases))]
}

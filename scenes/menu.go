package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/systems"
	"github.com/lofi/sisyphus-simulator/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Flow() *Flow
	Quit()
}

type menuAction int

const (
	menuNone menuAction = iota
	menuPlay
	menuQuit
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.ScreenUI
	once         sync.Once
	action       menuAction
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if systems.MenuSelectPressed(ms.ecs) {
		ms.action = menuPlay
	}

	switch ms.action {
	case menuPlay:
		ms.sceneChanger.Flow().mustTransition(cfg.GameInGame)
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger))
	case menuQuit:
		ms.sceneChanger.Quit()
	}
	ms.action = menuNone
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateVolumeKeys)

	ms.menuUI = ui.NewScreenUI(cfg.Menu.Title, nil, cfg.Menu.VolumeHint, []ui.Button{
		{Label: "Play", OnClick: func() { ms.action = menuPlay }},
		{Label: "Quit", OnClick: func() { ms.action = menuQuit }},
	})

	ms.sceneChanger.Flow().mustTransition(cfg.GameMainMenu)
}

package scenes

import (
	"image/color"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lofi/sisyphus-simulator/assets"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/systems"
	"github.com/lofi/sisyphus-simulator/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates a fresh run on the hill
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// Pause lives in the session; mirror it into the flow
	session := components.Session.Get(systems.GetOrCreateSession(ps.ecs))
	if session.State == cfg.GameInGame || session.State == cfg.GamePause {
		ps.sceneChanger.Flow().mustTransition(session.State)
	}

	if systems.GiveUpRequested(ps.ecs) {
		ps.giveUp()
	}
}

func (ps *PlatformerScene) giveUp() {
	distance := systems.Distance(ps.ecs)
	best, isNew := systems.RecordDistance(distance)
	systems.SetBestDistance(best)
	systems.FadeOutMusic(ps.ecs)

	ps.sceneChanger.Flow().mustTransition(cfg.GameGiveUp)
	ps.sceneChanger.ChangeScene(NewGiveUpScene(ps.sceneChanger, GiveUpResult{
		Distance:  distance,
		Best:      best,
		NewRecord: isNew,
	}))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	level := assets.NewLevelLoader().MustLoadLevel(cfg.Terrain.LevelPath)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateVolumeKeys)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateAssets(assets.PreloadPlayerSheets))

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateIntents))
	systems.AddSimulation(ecs)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerSounds))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawTerrain)
	ecs.AddRenderer(cfg.Default, systems.DrawBoulder)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawMarker)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	systems.GetOrCreateSession(ps.ecs)

	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	factory.CreateWorld(ps.ecs, &level, seed)
	systems.PrimeTerrain(ps.ecs)

	ps.sceneChanger.Flow().mustTransition(cfg.GameInGame)

	systems.PlayMusic(ps.ecs, cfg.Sound.HillMusic)
}

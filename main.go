package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/fonts"
	"github.com/lofi/sisyphus-simulator/scenes"
	"github.com/lofi/sisyphus-simulator/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	flow   *scenes.Flow
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Flow() *scenes.Flow {
	return g.flow
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
		flow:   scenes.NewFlow(),
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skipmenu", false, "start directly on the hill")
	debug := flag.Bool("debug", false, "show colliders and state overlay")
	tuning := flag.String("tuning", "", "path to a YAML tuning override file")
	seed := flag.Int64("seed", 0, "terrain seed (0 picks one at random)")
	flag.Parse()

	if err := config.LoadDefaultTuning(); err != nil {
		log.Fatalf("Failed to load default tuning: %v", err)
	}
	if *tuning != "" {
		if err := config.LoadTuningFile(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowColliders = *debug
	if *seed != 0 {
		config.Terrain.Seed = *seed
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	systems.SetBestDistance(systems.LoadBestDistance())

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order follows AddRenderer order.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed float64 // units per second while a move intent is held

	// Collider (box), centred on the player position
	HalfWidth  float64
	HalfHeight float64

	// Rigid body
	Mass           float64
	AngularDamping float64 // fraction of angular velocity removed per second

	// Hurt
	HurtTorque float64 // destabilizing torque applied while Hurt, scaled by facing

	// Sprite frames
	FrameWidth  int
	FrameHeight int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// FallRate is the constant vertical velocity requested every step (y-up, negative is down).
	FallRate float64

	// Rigid body world (boulder)
	Gravity    float64 // screen-space pixels/s², positive is down
	Iterations int
	Damping    float64

	// Character controller
	GroundSnap  float64 // max distance the feet snap down onto the ground
	ContactSkin float64 // allowed overlap against the boulder so contact registers
	CellSize    int
}

// BoulderConfig contains the pushable boulder configuration
type BoulderConfig struct {
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
}

// FatigueConfig contains fatigue model configuration
type FatigueConfig struct {
	Max           float64
	GainRate      float64 // per second while pushing
	DecayRate     float64 // per second otherwise
	HurtThreshold float64
}

// SlopeConfig contains slope alignment configuration
type SlopeConfig struct {
	RayLength float64 // ray length below the feet
	Blend     float64 // fraction of the remaining angle applied per step
}

// MarkerConfig contains fatigue marker configuration
type MarkerConfig struct {
	OffsetX     float64
	OffsetY     float64
	IconSize    int
	Thresholds  []float64 // lower bounds of buckets 1..6; must be ascending
	BobHeight   float64
	BobDuration float32 // seconds per half cycle
}

// TerrainConfig contains hill generation configuration
type TerrainConfig struct {
	LevelPath    string
	SlopeDegrees float64 // base incline of the hill
	SegmentWidth float64
	LookAhead    float64 // keep this much ground generated past the player
	Depth        float64 // thickness of each segment's collision strip
	JitterDeg    float64 // max deviation from the base incline
	NoiseScale   float64
	NoiseAlpha   float64
	NoiseBeta    float64
	NoiseN       int32
	Seed         int64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	OffsetYFactor   float64 // camera sits this fraction of the screen height above the player
}

// SessionConfig contains distance/give-up configuration
type SessionConfig struct {
	DistanceUnit    float64 // pushing steps per displayed metre
	PhraseThreshold float64 // metres past which an encouragement is shown
	Phrases         []string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu and give-up screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	ButtonText      color.RGBA
	HintColor       color.RGBA
	Title           string
	GiveUpTitle     string
	VolumeHint      string
}

// HUDConfig contains HUD configuration
type HUDConfig struct {
	TextColor   color.RGBA
	ShadowColor color.RGBA
	Margin      float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	ShowColliders bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Boulder BoulderConfig
var Fatigue FatigueConfig
var Slope SlopeConfig
var Marker MarkerConfig
var Terrain TerrainConfig
var Camera CameraConfig
var Session SessionConfig
var Pause PauseConfig
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Sky          = color.RGBA{R: 120, G: 170, B: 220, A: 255}
	Grass        = color.RGBA{R: 90, G: 150, B: 60, A: 255}
	Dirt         = color.RGBA{R: 110, G: 80, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Sisyphus Simulator",
	}

	Player = PlayerConfig{
		WalkSpeed: 100,

		HalfWidth:  24,
		HalfHeight: 24,

		Mass:           1,
		AngularDamping: 4,

		HurtTorque: 15360,

		FrameWidth:  64,
		FrameHeight: 64,
	}

	Physics = PhysicsConfig{
		FallRate: -100,

		Gravity:    600,
		Iterations: 10,
		Damping:    0.9,

		GroundSnap:  6,
		ContactSkin: 0.5,
		CellSize:    64,
	}

	Boulder = BoulderConfig{
		Radius:     64,
		Mass:       40,
		Friction:   0.9,
		Elasticity: 0,
	}

	Fatigue = FatigueConfig{
		Max:           100,
		GainRate:      5,
		DecayRate:     25,
		HurtThreshold: 99,
	}

	Slope = SlopeConfig{
		RayLength: 32,
		Blend:     0.1,
	}

	Marker = MarkerConfig{
		OffsetX:     0,
		OffsetY:     -44,
		IconSize:    16,
		Thresholds:  []float64{5, 20, 40, 60, 80, 95},
		BobHeight:   3,
		BobDuration: 0.6,
	}

	Terrain = TerrainConfig{
		LevelPath:    "levels/hill.tmx",
		SlopeDegrees: 7.5,
		SegmentWidth: 64,
		LookAhead:    1600,
		Depth:        24,
		JitterDeg:    4,
		NoiseScale:   0.07,
		NoiseAlpha:   2,
		NoiseBeta:    2,
		NoiseN:       3,
		Seed:         0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
		OffsetYFactor:   0.2,
	}

	Session = SessionConfig{
		DistanceUnit:    64,
		PhraseThreshold: 100,
		Phrases: []string{
			"You almost made it!",
			"Nearly there!",
			"So close!",
			"Just a bit more!",
			"You'll get it next time!",
			"You were almost there!",
			"Don't give up so easily!",
			"You were so close!",
			"Maybe next time!",
		},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Back", "Give Up"},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 25, G: 30, B: 45, A: 255},
		TitleColor:      Orange,
		ButtonColor:     color.RGBA{R: 70, G: 70, B: 90, A: 255},
		ButtonHover:     color.RGBA{R: 100, G: 100, B: 130, A: 255},
		ButtonText:      White,
		HintColor:       color.RGBA{R: 180, G: 180, B: 180, A: 255},
		Title:           "Sisyphus Simulator",
		GiveUpTitle:     "You gave up!",
		VolumeHint:      "-/= to lower/raise volume\n0 to mute",
	}

	HUD = HUDConfig{
		TextColor:   White,
		ShadowColor: color.RGBA{A: 160},
		Margin:      12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:      false,
		ShowColliders: false,
	}
}

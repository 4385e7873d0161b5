package config

// StateID is the player's locomotion state.
type StateID int

const (
	Setup StateID = iota
	Idle
	Walk
	Push
	Hurt
	Fall
)

func (s StateID) String() string {
	switch s {
	case Setup:
		return "setup"
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Push:
		return "push"
	case Hurt:
		return "hurt"
	case Fall:
		return "fall"
	}
	return "unknown"
}

// GameState is the session flow between menus and gameplay.
type GameState int

const (
	GameStartup GameState = iota
	GameMainMenu
	GameInGame
	GamePause
	GameGiveUp
	GameCleanup
)

func (g GameState) String() string {
	switch g {
	case GameStartup:
		return "Startup"
	case GameMainMenu:
		return "MainMenu"
	case GameInGame:
		return "InGame"
	case GamePause:
		return "Pause"
	case GameGiveUp:
		return "GiveUp"
	case GameCleanup:
		return "Cleanup"
	}
	return "Unknown"
}

// Facing is the direction the player sprite looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns -1 for left and 1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

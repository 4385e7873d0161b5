package scenes

import (
	"fmt"
	"log"

	cfg "github.com/lofi/sisyphus-simulator/config"
)

var transitions = map[cfg.GameState][]cfg.GameState{
	cfg.GameStartup:  {cfg.GameMainMenu, cfg.GameInGame},
	cfg.GameMainMenu: {cfg.GameInGame},
	cfg.GameInGame:   {cfg.GamePause, cfg.GameGiveUp},
	cfg.GamePause:    {cfg.GameInGame, cfg.GameGiveUp},
	cfg.GameGiveUp:   {cfg.GameCleanup},
	cfg.GameCleanup:  {cfg.GameInGame},
}

// Flow tracks where the session is between menus and gameplay.
type Flow struct {
	state cfg.GameState
}

func NewFlow() *Flow {
	return &Flow{state: cfg.GameStartup}
}

func (f *Flow) State() cfg.GameState {
	return f.state
}

// Transition moves to the given state. Moving to the current state is a
// no-op; moves the session does not allow are rejected and leave it as is.
func (f *Flow) Transition(to cfg.GameState) error {
	if to == f.state {
		return nil
	}
	for _, allowed := range transitions[f.state] {
		if allowed == to {
			log.Printf("transition: %v => %v", f.state, to)
			f.state = to
			return nil
		}
	}
	return fmt.Errorf("transition %v => %v not allowed", f.state, to)
}

// mustTransition logs rejected transitions instead of failing the frame.
func (f *Flow) mustTransition(to cfg.GameState) {
	if err := f.Transition(to); err != nil {
		log.Printf("Warning: %v", err)
	}
}

package components

import (
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
)

// StateData holds the locomotion state. Systems read Current and write
// Pending; CommitState copies Pending into Current once per tick.
type StateData struct {
	CurrentState  config.StateID
	PendingState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

// Request sets the state to apply at the next commit.
func (s *StateData) Request(state config.StateID) {
	s.PendingState = state
}

// Commit applies the pending state. It reports whether the state changed.
func (s *StateData) Commit() bool {
	if s.PendingState == s.CurrentState {
		s.StateTimer++
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = s.PendingState
	s.StateTimer = 0
	return true
}

var State = donburi.NewComponentType[StateData]()

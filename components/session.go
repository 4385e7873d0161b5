package components

import (
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
)

// SessionData is per-run gameplay state that outlives individual entities.
type SessionData struct {
	State           config.GameState
	Distance        float64 // steps spent pushing the boulder
	PlayerTextures  bool    // player sheets confirmed loaded
	GiveUpRequested bool
	PushSFXTimer    int
}

var Session = donburi.NewComponentType[SessionData]()

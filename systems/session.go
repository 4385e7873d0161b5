package systems

import (
	"log"

	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton session entry, creating it if needed.
func GetOrCreateSession(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Session.First(ecs.World); ok {
		return entry
	}
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		State: cfg.GameInGame,
	})
	components.Clock.SetValue(entry, components.ClockData{
		Delta: 1.0 / float64(cfg.C.TPS),
	})
	return entry
}

func sessionData(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(GetOrCreateSession(ecs))
}

// UpdateClock counts fixed steps.
func UpdateClock(ecs *ecs.ECS) {
	clock := components.Clock.Get(GetOrCreateSession(ecs))
	clock.Ticks++
}

// deltaTime is the fixed step length in seconds.
func deltaTime(ecs *ecs.ECS) float64 {
	clock := components.Clock.Get(GetOrCreateSession(ecs))
	if clock.Delta <= 0 {
		return 1.0 / float64(cfg.C.TPS)
	}
	return clock.Delta
}

// Distance returns the number of steps spent pushing the boulder this run.
func Distance(ecs *ecs.ECS) float64 {
	return sessionData(ecs).Distance
}

// DistanceMetres converts the pushing distance into the unit shown to the player.
func DistanceMetres(distance float64) float64 {
	return distance / cfg.Session.DistanceUnit
}

// RequestGiveUp flags the run as abandoned; the scene performs the transition.
func RequestGiveUp(ecs *ecs.ECS) {
	sessionData(ecs).GiveUpRequested = true
}

// GiveUpRequested reports whether the run was abandoned from the pause menu.
func GiveUpRequested(ecs *ecs.ECS) bool {
	return sessionData(ecs).GiveUpRequested
}

// UpdateAssets confirms the player sheets are available. Gameplay stays in
// Setup until this succeeds.
func UpdateAssets(load func() error) ecs.System {
	warned := false
	return func(ecs *ecs.ECS) {
		session := sessionData(ecs)
		if session.PlayerTextures {
			return
		}
		if err := load(); err != nil {
			if !warned {
				log.Printf("Warning: player sheets not ready: %v", err)
				warned = true
			}
			return
		}
		session.PlayerTextures = true
	}
}

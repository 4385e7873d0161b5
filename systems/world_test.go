package systems

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/assets"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const groundY = 800.0

// flatLevel is a level with one flat floor at groundY and nothing else.
func flatLevel(player, boulder math.Vec2) *assets.Level {
	return &assets.Level{
		Name:   "flat",
		Width:  4096,
		Height: 1024,
		Ground: []math.Vec2{
			{X: 0, Y: groundY},
			{X: 4096, Y: groundY},
		},
		PlayerSpawn: player,
		BoulderSpawn: assets.BoulderSpawn{
			X:      boulder.X,
			Y:      boulder.Y,
			Radius: cfg.Boulder.Radius,
		},
	}
}

// standing is a player centre resting on the flat floor.
func standing(x float64) math.Vec2 {
	return math.Vec2{X: x, Y: groundY - cfg.Player.HalfHeight}
}

// touchingBoulder is a boulder centre right of a standing player at x, at
// the distance the controller settles into when pushing.
func touchingBoulder(x float64) math.Vec2 {
	p := standing(x)
	return math.Vec2{
		X: x + cfg.Player.HalfWidth + cfg.Boulder.Radius - cfg.Physics.ContactSkin,
		Y: p.Y,
	}
}

// newTestWorld builds a headless run with the player sheets marked loaded.
func newTestWorld(t *testing.T, level *assets.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	sessionData(e).PlayerTextures = true
	factory.CreateWorld(e, level, 1)
	_, ok := playerEntry(e)
	require.True(t, ok)
	return e
}

// frozenWorld is newTestWorld with the boulder pinned in place.
func frozenWorld(t *testing.T, level *assets.Level) *ecs.ECS {
	e := newTestWorld(t, level)
	SetBoulderFrozen(e, true)
	return e
}

// step queues intents and runs one fixed step of the simulation.
func step(e *ecs.ECS, intents ...components.Intent) {
	if player, ok := playerEntry(e); ok {
		queue := components.Intents.Get(player)
		for _, i := range intents {
			queue.Push(i)
		}
	}
	for _, system := range Simulation {
		system(e)
	}
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := playerEntry(e)
	require.True(t, ok)
	return entry
}

func currentState(t *testing.T, e *ecs.ECS) cfg.StateID {
	return components.State.Get(mustPlayer(t, e)).CurrentState
}

func playerFatigue(t *testing.T, e *ecs.ECS) *components.FatigueData {
	return components.Fatigue.Get(mustPlayer(t, e))
}

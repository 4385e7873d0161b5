package systems

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseFreezesBoulder(t *testing.T) {
	e := newTestWorld(t, flatLevel(standing(400), standing(1200)))
	entry, ok := tags.Boulder.First(e.World)
	require.True(t, ok)
	body := components.RigidBody.Get(entry).Body
	require.Equal(t, cp.BODY_DYNAMIC, body.GetType())

	SetPaused(e, true)
	assert.Equal(t, cp.BODY_STATIC, body.GetType())
	assert.True(t, components.Boulder.Get(entry).Frozen)
	assert.Equal(t, cfg.GamePause, sessionData(e).State)

	SetPaused(e, false)
	assert.Equal(t, cp.BODY_DYNAMIC, body.GetType())
	assert.InDelta(t, cfg.Boulder.Mass, body.Mass(), 1e-9)
	assert.Equal(t, cfg.GameInGame, sessionData(e).State)
}

func TestPausedSimulationDoesNotStep(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	step(e, components.IntentIdle)
	SetPaused(e, true)

	p := mustPlayer(t, e)
	x := components.Object.Get(p).X
	for _, system := range Simulation {
		WithGameplayChecks(system)(e)
	}
	components.Intents.Get(p).Push(components.IntentMoveRight)
	for _, system := range Simulation {
		WithGameplayChecks(system)(e)
	}
	assert.Equal(t, x, components.Object.Get(p).X)
	assert.Equal(t, cfg.Idle, currentState(t, e))
}

func TestPauseMenuGiveUp(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	input := getOrCreateInput(e)

	press := func(action cfg.ActionID) {
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		input.Current[action] = true
		UpdatePause(e)
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		UpdatePause(e)
	}

	press(cfg.ActionPause)
	require.True(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, components.MenuBack, GetOrCreatePause(e).SelectedOption)

	press(cfg.ActionMenuDown)
	assert.Equal(t, components.MenuGiveUp, GetOrCreatePause(e).SelectedOption)
	assert.False(t, GiveUpRequested(e))

	press(cfg.ActionMenuSelect)
	assert.True(t, GiveUpRequested(e))
}

func TestPauseMenuBackResumes(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	input := getOrCreateInput(e)

	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	require.True(t, GetOrCreatePause(e).IsPaused)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuSelect] = true
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.False(t, GiveUpRequested(e))
}

func TestPauseOptionsWrap(t *testing.T) {
	assert.Equal(t, components.MenuGiveUp, cycleOption(components.MenuBack, -1))
	assert.Equal(t, components.MenuBack, cycleOption(components.MenuGiveUp, 1))
	assert.Equal(t, components.MenuGiveUp, cycleOption(components.MenuBack, 1))
}

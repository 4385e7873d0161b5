package scenes

import (
	"testing"

	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowFullRun(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, cfg.GameStartup, f.State())

	steps := []cfg.GameState{
		cfg.GameMainMenu,
		cfg.GameInGame,
		cfg.GamePause,
		cfg.GameInGame,
		cfg.GamePause,
		cfg.GameGiveUp,
		cfg.GameCleanup,
		cfg.GameInGame,
	}
	for _, s := range steps {
		require.NoError(t, f.Transition(s), "to %v", s)
		assert.Equal(t, s, f.State())
	}
}

func TestFlowSkipMenu(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Transition(cfg.GameInGame))
}

func TestFlowSameStateIsNoop(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Transition(cfg.GameStartup))
	assert.Equal(t, cfg.GameStartup, f.State())
}

func TestFlowRejectsInvalid(t *testing.T) {
	cases := map[string]struct {
		path []cfg.GameState
		to   cfg.GameState
	}{
		"menu to give up":    {path: []cfg.GameState{cfg.GameMainMenu}, to: cfg.GameGiveUp},
		"give up to game":    {path: []cfg.GameState{cfg.GameInGame, cfg.GameGiveUp}, to: cfg.GameInGame},
		"cleanup to pause":   {path: []cfg.GameState{cfg.GameInGame, cfg.GameGiveUp, cfg.GameCleanup}, to: cfg.GamePause},
		"startup to cleanup": {to: cfg.GameCleanup},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := NewFlow()
			for _, s := range tc.path {
				require.NoError(t, f.Transition(s))
			}
			before := f.State()

			assert.Error(t, f.Transition(tc.to))
			assert.Equal(t, before, f.State())
		})
	}
}

func TestPickPhrase(t *testing.T) {
	pick := func(n int) int { return n - 1 }

	assert.Empty(t, pickPhrase(cfg.Session.PhraseThreshold, pick))
	assert.Empty(t, pickPhrase(3, pick))

	got := pickPhrase(cfg.Session.PhraseThreshold+1, pick)
	assert.Equal(t, cfg.Session.Phrases[len(cfg.Session.Phrases)-1], got)
}

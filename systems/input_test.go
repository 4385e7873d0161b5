package systems

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestIntentFromInput(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        components.Intent
	}{
		{"nothing held", false, false, components.IntentIdle},
		{"left", true, false, components.IntentMoveLeft},
		{"right", false, true, components.IntentMoveRight},
		{"both held prefers left", true, true, components.IntentMoveLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Current[cfg.ActionMoveLeft] = tt.left
			input.Current[cfg.ActionMoveRight] = tt.right
			assert.Equal(t, tt.want, IntentFromInput(&input))
		})
	}
}

func TestGetActionEdges(t *testing.T) {
	var input components.InputData

	input.Current[cfg.ActionPause] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(&input, cfg.ActionPause))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(&input, cfg.ActionPause))

	input.Current[cfg.ActionPause] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(&input, cfg.ActionPause))
}

func TestUpdateIntentsQueuesOnPlayer(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	getOrCreateInput(e).Current[cfg.ActionMoveRight] = true

	UpdateIntents(e)
	assert.Equal(t, []components.Intent{components.IntentMoveRight}, components.Intents.Get(mustPlayer(t, e)).Pending)
}

func TestUpdateIntentsWithoutPlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.NotPanics(t, func() { UpdateIntents(e) })
}

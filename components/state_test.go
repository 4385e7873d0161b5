package components

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/config"
	"github.com/stretchr/testify/assert"
)

func TestStateRequestDoesNotChangeCurrent(t *testing.T) {
	s := StateData{CurrentState: config.Idle, PendingState: config.Idle}

	s.Request(config.Walk)
	assert.Equal(t, config.Idle, s.CurrentState)
	assert.Equal(t, config.Walk, s.PendingState)

	s.Request(config.Push)
	assert.Equal(t, config.Idle, s.CurrentState, "later requests in the same tick only overwrite pending")
}

func TestStateCommit(t *testing.T) {
	s := StateData{CurrentState: config.Setup}

	s.Request(config.Idle)
	assert.True(t, s.Commit())
	assert.Equal(t, config.Idle, s.CurrentState)
	assert.Equal(t, config.Setup, s.PreviousState)
	assert.Equal(t, 0, s.StateTimer)

	assert.False(t, s.Commit())
	assert.False(t, s.Commit())
	assert.Equal(t, 2, s.StateTimer)
}

func TestIntentQueue(t *testing.T) {
	var q IntentQueue
	q.Push(IntentMoveLeft)
	q.Push(IntentIdle)
	assert.Equal(t, []Intent{IntentMoveLeft, IntentIdle}, q.Pending)

	q.Clear()
	assert.Empty(t, q.Pending)
	assert.Equal(t, "MoveRight", IntentMoveRight.String())
}

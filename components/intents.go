package components

import "github.com/yohamta/donburi"

// Intent is a discrete movement request produced from input.
type Intent int

const (
	IntentIdle Intent = iota
	IntentMoveLeft
	IntentMoveRight
)

func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	}
	return "Idle"
}

// IntentQueue collects the intents for one step. UpdatePlayer drains it.
type IntentQueue struct {
	Pending []Intent
}

func (q *IntentQueue) Push(i Intent) {
	q.Pending = append(q.Pending, i)
}

func (q *IntentQueue) Clear() {
	q.Pending = q.Pending[:0]
}

var Intents = donburi.NewComponentType[IntentQueue]()

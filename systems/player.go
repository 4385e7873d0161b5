package systems

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// playerEntry returns the player. False means the simulation is not ready
// and callers skip the step.
func playerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

func boulderEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := tags.Boulder.First(ecs.World)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// UpdateFall resets the desired translation to a constant-velocity fall.
// It runs every step, grounded or not; the controller cancels it on ground.
func UpdateFall(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	body := components.Body.Get(player)
	body.DesiredTranslation = math.Vec2{X: 0, Y: deltaTime(ecs) * cfg.Physics.FallRate}
}

// UpdatePlayer runs the locomotion rules in precedence order and writes the
// pending state, the desired horizontal translation and the hurt torque.
// Contact with the boulder is applied later by UpdateContact.
func UpdatePlayer(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	intents := components.Intents.Get(player)
	defer intents.Clear()
	if _, ok := boulderEntry(ecs); !ok {
		return
	}

	dt := deltaTime(ecs)
	session := sessionData(ecs)
	state := components.State.Get(player)
	body := components.Body.Get(player)

	if !session.PlayerTextures {
		state.Request(cfg.Setup)
		body.Torque = 0
		return
	}

	// Air control: intents still move the body while falling.
	dx, next := consumeIntents(intents.Pending, dt)

	if !body.Feedback.Grounded {
		body.DesiredTranslation.X = dx
		body.Torque = 0
		state.Request(cfg.Fall)
		return
	}

	fatigue := components.Fatigue.Get(player)
	contact := components.Contact.Get(player)
	if fatigue.Value >= cfg.Fatigue.HurtThreshold && contact.Touching {
		facing := components.Player.Get(player).Facing
		body.Torque = cfg.Player.HurtTorque * facing.Sign()
		body.DesiredTranslation.X = 0
		state.Request(cfg.Hurt)
		return
	}
	body.Torque = 0

	body.DesiredTranslation.X = dx
	state.Request(next)
}

// consumeIntents applies queued intents in order; the last one wins.
func consumeIntents(pending []components.Intent, dt float64) (float64, cfg.StateID) {
	dx, next := 0.0, cfg.Idle
	for _, intent := range pending {
		switch intent {
		case components.IntentMoveLeft:
			dx, next = -dt*cfg.Player.WalkSpeed, cfg.Walk
		case components.IntentMoveRight:
			dx, next = dt*cfg.Player.WalkSpeed, cfg.Walk
		default:
			dx, next = 0, cfg.Idle
		}
	}
	return dx, next
}

// UpdateFacing follows what the body attempted, not what it achieved.
// A zero attempt keeps the previous facing.
func UpdateFacing(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	desired := components.Body.Get(player).Feedback.DesiredTranslation
	data := components.Player.Get(player)
	switch {
	case desired.X > 0:
		data.Facing = cfg.FacingRight
	case desired.X < 0:
		data.Facing = cfg.FacingLeft
	}
}

package systems

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestIdlePlayerStaysRested(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), standing(1200)))

	step(e, components.IntentIdle)
	require.True(t, components.Body.Get(mustPlayer(t, e)).Feedback.Grounded)

	for i := 0; i < cfg.C.TPS; i++ {
		step(e, components.IntentIdle)
		assert.Equal(t, cfg.Idle, currentState(t, e), "step %d", i)
		assert.Equal(t, 0.0, playerFatigue(t, e).Value, "step %d", i)
	}
}

func TestPushingUntilHurt(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), touchingBoulder(200)))
	p := mustPlayer(t, e)

	step(e, components.IntentIdle)
	require.True(t, components.Contact.Get(p).Touching)

	sawHurt := false
	peak := 0.0
	for i := 0; i < 20*cfg.C.TPS; i++ {
		step(e, components.IntentMoveRight)

		f := playerFatigue(t, e).Value
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, cfg.Fatigue.Max)
		if f > peak {
			peak = f
		}

		if currentState(t, e) == cfg.Hurt {
			sawHurt = true
			assert.True(t, components.Contact.Get(p).Touching)
			assert.Equal(t, 0.0, components.Body.Get(p).Feedback.DesiredTranslation.X)
		}
	}

	assert.True(t, sawHurt, "hurt within 20s of pushing")
	assert.GreaterOrEqual(t, peak, cfg.Fatigue.HurtThreshold)
	// Hurt is not Push, so fatigue decays from the first hurt step and never
	// gets past one push step above the threshold.
	assert.Less(t, peak, cfg.Fatigue.HurtThreshold+cfg.Fatigue.GainRate/float64(cfg.C.TPS)+1e-9)
	assert.Greater(t, Distance(e), 0.0)
}

func TestPushingRaisesFatigueAtGainRate(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), touchingBoulder(200)))
	step(e, components.IntentIdle)

	for i := 0; i < cfg.C.TPS; i++ {
		step(e, components.IntentMoveRight)
		require.Equal(t, cfg.Push, currentState(t, e))
	}
	assert.InDelta(t, cfg.Fatigue.GainRate, playerFatigue(t, e).Value, 1e-9)
}

func TestAirborneFallsBeforeHurt(t *testing.T) {
	e := frozenWorld(t, flatLevel(math.Vec2{X: 200, Y: 300}, standing(1200)))
	p := mustPlayer(t, e)

	for i := 0; i < 3; i++ {
		playerFatigue(t, e).Value = cfg.Fatigue.HurtThreshold
		components.Contact.Get(p).Touching = true

		step(e, components.IntentMoveRight)

		assert.Equal(t, cfg.Fall, currentState(t, e))
		assert.False(t, components.Body.Get(p).Feedback.Grounded)
	}

	// Intents still steer while airborne.
	assert.Greater(t, components.Body.Get(p).Feedback.EffectiveTranslation.X, 0.0)
	assert.Equal(t, cfg.ClipFall, components.Animation.Get(p).CurrentClip)
}

// Falling is checked before hurting: a fatigued player in contact on its
// very first step reports Fall and only becomes Hurt the step after.
func TestFallMasksHurtOnFirstStep(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), touchingBoulder(200)))
	p := mustPlayer(t, e)

	playerFatigue(t, e).Value = cfg.Fatigue.Max
	components.Contact.Get(p).Touching = true

	step(e, components.IntentMoveRight)
	assert.Equal(t, cfg.Fall, currentState(t, e))
	assert.Equal(t, cfg.ClipFall, components.Animation.Get(p).CurrentClip)

	step(e, components.IntentMoveRight)
	assert.Equal(t, cfg.Hurt, currentState(t, e))
	assert.Equal(t, cfg.ClipHurt, components.Animation.Get(p).CurrentClip)
}

func TestHurtTorqueFollowsFacing(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), touchingBoulder(200)))
	p := mustPlayer(t, e)
	step(e, components.IntentIdle)

	playerFatigue(t, e).Value = cfg.Fatigue.Max
	step(e, components.IntentMoveRight)
	require.Equal(t, cfg.Hurt, currentState(t, e))
	assert.Equal(t, cfg.Player.HurtTorque, components.Body.Get(p).Torque)
	assert.NotZero(t, components.Body.Get(p).AngularVelocity)

	components.Player.Get(p).Facing = cfg.FacingLeft
	playerFatigue(t, e).Value = cfg.Fatigue.Max
	step(e, components.IntentMoveRight)
	assert.Equal(t, -cfg.Player.HurtTorque, components.Body.Get(p).Torque)
}

func TestContactTurnsIdleIntoPush(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), touchingBoulder(200)))
	step(e, components.IntentIdle)
	before := Distance(e)

	step(e, components.IntentIdle)
	assert.Equal(t, cfg.Push, currentState(t, e))
	assert.Equal(t, before+1, Distance(e))

	step(e)
	assert.Equal(t, before+2, Distance(e))
}

func TestWalkingWithoutContact(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(200), standing(1200)))
	p := mustPlayer(t, e)
	step(e, components.IntentIdle)

	startX := components.Object.Get(p).X
	for i := 0; i < cfg.C.TPS; i++ {
		step(e, components.IntentMoveRight)
		require.Equal(t, cfg.Walk, currentState(t, e))
	}
	assert.InDelta(t, cfg.Player.WalkSpeed, components.Object.Get(p).X-startX, 1e-6)
	assert.Equal(t, 0.0, playerFatigue(t, e).Value)
	assert.Equal(t, 0.0, Distance(e))
	assert.Equal(t, cfg.ClipWalk, components.Animation.Get(p).CurrentClip)
}

func TestLastIntentWins(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	p := mustPlayer(t, e)
	step(e, components.IntentIdle)

	step(e, components.IntentMoveRight, components.IntentMoveLeft)
	assert.Less(t, components.Body.Get(p).Feedback.DesiredTranslation.X, 0.0)

	step(e, components.IntentMoveLeft, components.IntentIdle)
	assert.Equal(t, cfg.Idle, currentState(t, e))
	assert.Empty(t, components.Intents.Get(p).Pending)
}

func TestFacingPersistsWhenIdle(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	p := mustPlayer(t, e)
	step(e, components.IntentIdle)
	assert.Equal(t, cfg.FacingRight, components.Player.Get(p).Facing)

	step(e, components.IntentMoveLeft)
	assert.Equal(t, cfg.FacingLeft, components.Player.Get(p).Facing)

	for i := 0; i < 10; i++ {
		step(e, components.IntentIdle)
	}
	assert.Equal(t, cfg.FacingLeft, components.Player.Get(p).Facing)

	step(e, components.IntentMoveRight)
	assert.Equal(t, cfg.FacingRight, components.Player.Get(p).Facing)
}

func TestSetupUntilTexturesLoad(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	p := mustPlayer(t, e)
	sessionData(e).PlayerTextures = false

	for i := 0; i < 5; i++ {
		step(e, components.IntentMoveRight)
		assert.Equal(t, cfg.Setup, currentState(t, e))
		assert.Equal(t, 0.0, components.Body.Get(p).Feedback.DesiredTranslation.X)
	}

	loads := 0
	UpdateAssets(func() error { loads++; return nil })(e)
	assert.True(t, sessionData(e).PlayerTextures)
	assert.Equal(t, 1, loads)

	step(e, components.IntentMoveRight)
	assert.Equal(t, cfg.Walk, currentState(t, e))
}

func TestFallResetsDesiredTranslation(t *testing.T) {
	e := frozenWorld(t, flatLevel(standing(400), standing(1200)))
	body := components.Body.Get(mustPlayer(t, e))
	body.DesiredTranslation = math.Vec2{X: 50, Y: 50}

	UpdateFall(e)
	assert.Equal(t, 0.0, body.DesiredTranslation.X)
	assert.InDelta(t, cfg.Physics.FallRate/float64(cfg.C.TPS), body.DesiredTranslation.Y, 1e-12)
}

func TestMissingEntitiesAreSkipped(t *testing.T) {
	t.Run("empty world", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		assert.NotPanics(t, func() { step(e, components.IntentMoveRight) })
	})

	t.Run("no boulder", func(t *testing.T) {
		e := newTestWorld(t, flatLevel(standing(400), standing(1200)))
		boulder, ok := tags.Boulder.First(e.World)
		require.True(t, ok)
		e.World.Remove(boulder.Entity())

		for i := 0; i < 10; i++ {
			assert.NotPanics(t, func() { step(e, components.IntentMoveRight) })
		}
		assert.Equal(t, cfg.Setup, currentState(t, e))
		assert.Equal(t, 0.0, Distance(e))
		assert.Empty(t, components.Intents.Get(mustPlayer(t, e)).Pending)
	})
}

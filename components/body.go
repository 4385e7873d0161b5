package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyFeedback is what the character controller reports after resolving a step.
type BodyFeedback struct {
	Grounded             bool
	DesiredTranslation   math.Vec2
	EffectiveTranslation math.Vec2
}

// BodyData is the player's side of the physics boundary. Translations are
// y-up world units; the controller converts to screen space.
type BodyData struct {
	// DesiredTranslation is rewritten every step before the controller runs.
	DesiredTranslation math.Vec2
	Feedback           BodyFeedback

	HalfWidth  float64
	HalfHeight float64

	Mass           float64 // rotational inertia follows from mass and box size
	AngularDamping float64

	Rotation        float64 // radians, counter-clockwise
	AngularVelocity float64
	Torque          float64 // external torque; cleared when not hurt
}

var Body = donburi.NewComponentType[BodyData]()

package systems

import (
	"testing"

	"github.com/lofi/sisyphus-simulator/components"
	"github.com/stretchr/testify/assert"
)

func TestHeavierPlayerSpinsSlower(t *testing.T) {
	spin := func(mass float64) float64 {
		body := &components.BodyData{HalfWidth: 24, HalfHeight: 24, Mass: mass, Torque: 384}
		integrateRotation(body, 1)
		return body.AngularVelocity
	}

	// 48x48 box of mass 1 has inertia 384.
	assert.InDelta(t, 1.0, spin(1), 1e-12)
	assert.InDelta(t, 0.5, spin(2), 1e-12)
}

func TestRotationWithoutMassIgnoresTorque(t *testing.T) {
	body := &components.BodyData{HalfWidth: 24, HalfHeight: 24, Torque: 100}
	integrateRotation(body, 1.0/60)
	assert.Zero(t, body.AngularVelocity)
	assert.Zero(t, body.Rotation)
}

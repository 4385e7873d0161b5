package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateFatigueBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	value := 0.0
	for i := 0; i < 10000; i++ {
		pushing := rng.Intn(3) > 0
		dt := rng.Float64() * 0.5
		next := IntegrateFatigue(value, pushing, dt, 5, 25, 100)

		assert.GreaterOrEqual(t, next, 0.0)
		assert.LessOrEqual(t, next, 100.0)
		if pushing {
			assert.GreaterOrEqual(t, next, value)
		} else {
			assert.LessOrEqual(t, next, value)
		}
		value = next
	}
}

func TestIntegrateFatigueRates(t *testing.T) {
	dt := 1.0 / 60
	value := 0.0
	for i := 0; i < 60; i++ {
		value = IntegrateFatigue(value, true, dt, 5, 25, 100)
	}
	assert.InDelta(t, 5.0, value, 1e-9)

	for i := 0; i < 6; i++ {
		value = IntegrateFatigue(value, false, dt, 5, 25, 100)
	}
	assert.InDelta(t, 2.5, value, 1e-9)
}

func TestIntegrateFatigueClampsAtMax(t *testing.T) {
	dt := 1.0 / 60
	value := 0.0
	for i := 0; i < 20*60+30; i++ {
		value = IntegrateFatigue(value, true, dt, 5, 25, 100)
	}
	assert.Equal(t, 100.0, value)
}

func TestFatigueBucket(t *testing.T) {
	thresholds := []float64{5, 20, 40, 60, 80, 95}

	assert.Equal(t, 0, FatigueBucket(0, thresholds))
	assert.Equal(t, 0, FatigueBucket(4.99, thresholds))
	assert.Equal(t, 1, FatigueBucket(5, thresholds))
	assert.Equal(t, 3, FatigueBucket(59, thresholds))
	assert.Equal(t, 6, FatigueBucket(95, thresholds))
	assert.Equal(t, 6, FatigueBucket(100, thresholds))

	prev := 0
	for v := 0.0; v <= 100; v += 0.25 {
		b := FatigueBucket(v, thresholds)
		assert.GreaterOrEqual(t, b, prev)
		assert.LessOrEqual(t, b, 6)
		prev = b
	}
}

package gamemath

// IntegrateFatigue advances fatigue by one step and clamps it to [0, max].
func IntegrateFatigue(value float64, pushing bool, dt, gain, decay, max float64) float64 {
	if pushing {
		value += gain * dt
	} else {
		value -= decay * dt
	}
	return Clamp(value, 0, max)
}

// FatigueBucket maps fatigue onto an icon index: the number of thresholds
// the value has reached. With six ascending thresholds this gives 0..6.
func FatigueBucket(value float64, thresholds []float64) int {
	bucket := 0
	for _, t := range thresholds {
		if value < t {
			break
		}
		bucket++
	}
	return bucket
}

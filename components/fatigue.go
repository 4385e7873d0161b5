package components

import "github.com/yohamta/donburi"

// FatigueData is bounded to [0, config.Fatigue.Max].
type FatigueData struct {
	Value float64
}

var Fatigue = donburi.NewComponentType[FatigueData]()

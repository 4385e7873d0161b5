package components

import "github.com/yohamta/donburi"

// ClockData is the fixed simulation step.
type ClockData struct {
	Delta float64 // seconds per tick
	Ticks uint64
}

var Clock = donburi.NewComponentType[ClockData]()

package components

import "github.com/yohamta/donburi"

type BoulderData struct {
	Radius float64
	Frozen bool // body is Fixed while gameplay is paused
}

var Boulder = donburi.NewComponentType[BoulderData]()

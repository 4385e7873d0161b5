package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MarkerData is the fatigue icon floating above the player. Everything here
// is derived from the player each tick.
type MarkerData struct {
	Position math.Vec2
	OffsetX  float64
	OffsetY  float64
	Icon     int

	Bob       *gween.Tween
	BobUp     bool
	BobOffset float64
}

var Marker = donburi.NewComponentType[MarkerData]()

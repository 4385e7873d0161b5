package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal centre of the collision box.
func (o ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical centre of the collision box (screen space).
func (o ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the character controller's broad-phase space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()

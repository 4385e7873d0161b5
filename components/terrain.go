package components

import (
	"github.com/aquilax/go-perlin"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SegmentData is one straight piece of ground, in screen space with A left of B.
type SegmentData struct {
	A, B math.Vec2
}

var Segment = donburi.NewComponentType[SegmentData]()

// TerrainData tracks the generated hill.
type TerrainData struct {
	Noise    *perlin.Perlin
	Surface  []math.Vec2 // polyline of every segment endpoint, left to right
	Segments int
	Limit    float64 // no ground is generated past this x
}

// End returns the right-most surface point.
func (t *TerrainData) End() math.Vec2 {
	if len(t.Surface) == 0 {
		return math.Vec2{}
	}
	return t.Surface[len(t.Surface)-1]
}

var Terrain = donburi.NewComponentType[TerrainData]()

package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleIntersectsAABB(t *testing.T) {
	const r = 64.0
	const eps = 1e-6
	box := AABB{X: 0, Y: 0, HalfW: 24, HalfH: 24}

	cases := []struct {
		name   string
		circle Circle
		want   bool
	}{
		{"centre inside box", Circle{X: 5, Y: -3, R: r}, true},
		{"centre exactly on box edge", Circle{X: 24, Y: 0, R: r}, true},
		{"touching along x axis", Circle{X: 24 + r, Y: 0, R: r}, true},
		{"just beyond radius along x", Circle{X: 24 + r + eps, Y: 0, R: r}, false},
		{"just beyond radius along y", Circle{X: 0, Y: -(24 + r + eps), R: r}, false},
		{"inside radius at corner diagonal", Circle{X: 24 + (r-eps)/math.Sqrt2, Y: 24 + (r-eps)/math.Sqrt2, R: r}, true},
		{"outside radius at corner diagonal", Circle{X: 24 + (r+eps)/math.Sqrt2, Y: 24 + (r+eps)/math.Sqrt2, R: r}, false},
		{"box-vs-box would say yes, circle says no", Circle{X: 24 + r - 1, Y: 24 + r - 1, R: r}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CircleIntersectsAABB(tc.circle, box))
		})
	}
}

func TestClosestPointClampsToBox(t *testing.T) {
	box := AABB{X: 10, Y: 10, HalfW: 5, HalfH: 2}

	x, y := box.ClosestPoint(100, -100)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 8.0, y)

	x, y = box.ClosestPoint(11, 9)
	assert.Equal(t, 11.0, x)
	assert.Equal(t, 9.0, y)
}

func TestClampMoveX(t *testing.T) {
	c := Circle{X: 100, Y: 0, R: 64}
	box := AABB{X: 0, Y: 0, HalfW: 24, HalfH: 24}

	t.Run("free move", func(t *testing.T) {
		assert.Equal(t, 2.0, ClampMoveX(box, 2, c, 64))
	})

	t.Run("stops at the surface", func(t *testing.T) {
		// right edge at 24, circle surface at 36
		moved := ClampMoveX(box, 20, c, 64)
		assert.InDelta(t, 12.0, moved, 1e-4)
		assert.GreaterOrEqual(t, c.DistanceSq(box.Offset(moved, 0)), 64.0*64.0)
	})

	t.Run("skin lets the box settle in contact", func(t *testing.T) {
		moved := ClampMoveX(box, 20, c, 63.5)
		assert.True(t, CircleIntersectsAABB(c, box.Offset(moved, 0)))
	})

	t.Run("overlapping box may separate", func(t *testing.T) {
		overlapping := box.Offset(20, 0)
		assert.Equal(t, -3.0, ClampMoveX(overlapping, -3, c, 64))
		assert.Equal(t, 0.0, ClampMoveX(overlapping, 3, c, 64))
	})

	t.Run("zero move", func(t *testing.T) {
		assert.Equal(t, 0.0, ClampMoveX(box, 0, c, 64))
	})
}

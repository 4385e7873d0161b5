package gamemath

// AABB is an axis-aligned box described by its centre and half extents.
type AABB struct {
	X, Y  float64
	HalfW float64
	HalfH float64
}

// Circle is described by its centre and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// Offset returns the box translated by (dx, dy).
func (b AABB) Offset(dx, dy float64) AABB {
	b.X += dx
	b.Y += dy
	return b
}

// ClosestPoint returns the point of the box nearest to (x, y).
// Points inside the box are returned unchanged.
func (b AABB) ClosestPoint(x, y float64) (float64, float64) {
	return Clamp(x, b.X-b.HalfW, b.X+b.HalfW), Clamp(y, b.Y-b.HalfH, b.Y+b.HalfH)
}

// DistanceSq returns the squared distance between the circle centre and the box.
func (c Circle) DistanceSq(b AABB) float64 {
	px, py := b.ClosestPoint(c.X, c.Y)
	dx, dy := c.X-px, c.Y-py
	return dx*dx + dy*dy
}

// CircleIntersectsAABB reports whether the circle touches or overlaps the box.
// Touching exactly at the radius counts as contact.
func CircleIntersectsAABB(c Circle, b AABB) bool {
	return c.DistanceSq(b) <= c.R*c.R
}

// ClampMoveX limits a horizontal move of the box so that it does not get
// closer than minDist to the circle centre. A box that already overlaps may
// only move in the direction that separates it.
func ClampMoveX(b AABB, dx float64, c Circle, minDist float64) float64 {
	if dx == 0 {
		return 0
	}
	limit := minDist * minDist
	start := c.DistanceSq(b)
	end := c.DistanceSq(b.Offset(dx, 0))
	if end >= limit {
		return dx
	}
	if start < limit {
		if end > start {
			return dx
		}
		return 0
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if c.DistanceSq(b.Offset(dx*mid, 0)) >= limit {
			lo = mid
		} else {
			hi = mid
		}
	}
	return dx * lo
}

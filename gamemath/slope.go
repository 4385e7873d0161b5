package gamemath

import "math"

// SurfaceY returns the height of segment a-b at x, clamped to the segment's ends.
func SurfaceY(ax, ay, bx, by, x float64) float64 {
	if bx == ax {
		return math.Min(ay, by)
	}
	t := Clamp((x-ax)/(bx-ax), 0, 1)
	return Lerp(ay, by, t)
}

// SlopeAngle converts a surface normal (y-up) into a body rotation.
// A flat floor has normal (0, 1) and yields zero.
func SlopeAngle(nx, ny float64) float64 {
	return NormalizeAngle(math.Atan2(ny, nx) - math.Pi/2)
}

// BlendAngle moves current toward target by factor of the shortest arc.
func BlendAngle(current, target, factor float64) float64 {
	return NormalizeAngle(current + NormalizeAngle(target-current)*factor)
}

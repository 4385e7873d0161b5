package systems

import (
	stdmath "math"

	"github.com/jakecoffman/cp"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// slopeSurfaceOffset keeps the feet slightly above the surface for stable
// ground detection
const slopeSurfaceOffset = 0.1

// UpdateBodies resolves the player's desired translation against the world
// and writes the feedback the state machine reads next step. Desired and
// effective translations are y-up; the resolv space is y-down.
func UpdateBodies(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	dt := deltaTime(ecs)
	body := components.Body.Get(player)
	obj := components.Object.Get(player).Object

	var boulder *gamemath.Circle
	if b, ok := boulderEntry(ecs); ok {
		c := boulderCircle(b)
		boulder = &c
	}

	startX, startY := obj.X, obj.Y
	dx := resolveHorizontal(obj, body, body.DesiredTranslation.X, boulder)
	obj.X += dx

	grounded, dy := resolveVertical(obj, -body.DesiredTranslation.Y)
	obj.Y += dy
	obj.Update()

	body.Feedback = components.BodyFeedback{
		Grounded:             grounded,
		DesiredTranslation:   body.DesiredTranslation,
		EffectiveTranslation: math.Vec2{X: obj.X - startX, Y: -(obj.Y - startY)},
	}

	integrateRotation(body, dt)
}

// resolveHorizontal clamps dx against solid walls and the boulder.
func resolveHorizontal(obj *resolv.Object, body *components.BodyData, dx float64, boulder *gamemath.Circle) float64 {
	if dx == 0 {
		return 0
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsVertically(obj, solid) {
				continue
			}
			switch {
			case dx < 0 && solid.X+solid.W <= obj.X:
				dx = stdmath.Max(dx, solid.X+solid.W-obj.X)
			case dx > 0 && solid.X >= obj.X+obj.W:
				dx = stdmath.Min(dx, solid.X-(obj.X+obj.W))
			}
		}
	}

	if boulder != nil {
		box := gamemath.AABB{
			X:     obj.X + obj.W/2,
			Y:     obj.Y + obj.H/2,
			HalfW: body.HalfWidth,
			HalfH: body.HalfHeight,
		}
		dx = gamemath.ClampMoveX(box, dx, *boulder, boulder.R-cfg.Physics.ContactSkin)
	}

	return dx
}

func overlapsVertically(obj, other *resolv.Object) bool {
	return obj.Y+obj.H > other.Y && obj.Y < other.Y+other.H
}

// resolveVertical moves the feet by dy (screen space) and snaps them onto
// the ground when it is within reach.
func resolveVertical(obj *resolv.Object, dy float64) (bool, float64) {
	surfaceY, found := groundBelow(obj, dy)
	if !found {
		return false, dy
	}

	bottom := obj.Y + obj.H
	if bottom+dy < surfaceY-cfg.Physics.GroundSnap {
		return false, dy
	}
	return true, surfaceY - bottom - slopeSurfaceOffset
}

// groundBelow returns the highest ground surface under the object's centre.
func groundBelow(obj *resolv.Object, dy float64) (float64, bool) {
	reach := stdmath.Max(dy, 0) + cfg.Physics.GroundSnap
	check := obj.Check(0, reach, tags.ResolvRamp)
	if check == nil {
		return 0, false
	}

	centerX := obj.X + obj.W/2
	bottom := obj.Y + obj.H
	best, found := 0.0, false
	for _, ramp := range check.ObjectsByTags(tags.ResolvRamp) {
		entry, ok := ramp.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Segment) {
			continue
		}
		seg := components.Segment.Get(entry)
		if centerX < seg.A.X || centerX > seg.B.X {
			continue
		}
		y := gamemath.SurfaceY(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, centerX)
		// Ignore ground the feet are already deep below.
		if bottom > y+cfg.Terrain.Depth {
			continue
		}
		if !found || y < best {
			best, found = y, true
		}
	}
	return best, found
}

// integrateRotation applies the external torque and angular damping.
// Rotation is radians, counter-clockwise.
func integrateRotation(body *components.BodyData, dt float64) {
	if inertia := cp.MomentForBox(body.Mass, body.HalfWidth*2, body.HalfHeight*2); inertia > 0 {
		body.AngularVelocity += body.Torque / inertia * dt
	}
	body.AngularVelocity *= stdmath.Max(0, 1-body.AngularDamping*dt)
	body.Rotation = gamemath.NormalizeAngle(body.Rotation + body.AngularVelocity*dt)
}

package systems

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContact tests the player box against the boulder circle. Contact
// turns a same-step Walk or Idle into Push and counts toward the distance.
func UpdateContact(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	boulder, ok := boulderEntry(ecs)
	if !ok {
		return
	}

	contact := components.Contact.Get(player)
	contact.Touching = gamemath.CircleIntersectsAABB(boulderCircle(boulder), playerBox(player))
	if !contact.Touching {
		return
	}

	state := components.State.Get(player)
	switch state.PendingState {
	case cfg.Walk, cfg.Idle, cfg.Push:
		state.Request(cfg.Push)
		sessionData(ecs).Distance++
	}
}

// playerBox is the player collider in screen space.
func playerBox(player *donburi.Entry) gamemath.AABB {
	obj := components.Object.Get(player)
	body := components.Body.Get(player)
	return gamemath.AABB{
		X:     obj.CenterX(),
		Y:     obj.CenterY(),
		HalfW: body.HalfWidth,
		HalfH: body.HalfHeight,
	}
}

// boulderCircle is the boulder collider in screen space, read from the
// rigid body when there is one.
func boulderCircle(boulder *donburi.Entry) gamemath.Circle {
	radius := components.Boulder.Get(boulder).Radius
	if rb := components.RigidBody.Get(boulder); rb.Body != nil {
		p := rb.Body.Position()
		return gamemath.Circle{X: p.X, Y: p.Y, R: radius}
	}
	obj := components.Object.Get(boulder)
	return gamemath.Circle{X: obj.CenterX(), Y: obj.CenterY(), R: radius}
}

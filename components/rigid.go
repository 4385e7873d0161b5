package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// RigidBodyData stores Chipmunk2D runtime data for an entity.
type RigidBodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()

// RigidWorldData is the rigid-body simulation the boulder lives in.
type RigidWorldData struct {
	Space *cp.Space
}

var RigidWorld = donburi.NewComponentType[RigidWorldData]()

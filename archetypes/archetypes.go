package archetypes

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.State,
		components.Fatigue,
		components.Contact,
		components.Intents,
		components.Animation,
		components.RigidBody,
	)
	Boulder = newArchetype(
		tags.Boulder,
		components.Boulder,
		components.Object,
		components.RigidBody,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Segment,
		components.Object,
		components.RigidBody,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.RigidBody,
	)
	Space = newArchetype(
		components.Space,
	)
	RigidWorld = newArchetype(
		components.RigidWorld,
	)
	Level = newArchetype(
		components.Level,
		components.Terrain,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

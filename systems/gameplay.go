package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// Simulation is the fixed-step gameplay order once intents are queued.
// State changes requested by UpdatePlayer and UpdateContact only become
// current at CommitState; everything after it reads the committed state.
var Simulation = []ecs.System{
	UpdateClock,
	UpdateFall,
	UpdatePlayer,
	UpdateBodies,
	UpdateFacing,
	UpdateBoulder,
	UpdateContact,
	CommitState,
	UpdateFatigue,
	UpdateSlopeAlignment,
	UpdateAnimation,
	UpdateMarker,
	UpdateTerrain,
	UpdateCamera,
}

// AddSimulation registers the simulation systems, skipped while paused.
func AddSimulation(e *ecs.ECS) {
	for _, system := range Simulation {
		e.AddSystem(WithGameplayChecks(system))
	}
}

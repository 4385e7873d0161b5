package systems

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFatigue integrates fatigue on the committed state: it rises while
// pushing and recovers otherwise.
func UpdateFatigue(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	state := components.State.Get(player)
	fatigue := components.Fatigue.Get(player)
	fatigue.Value = gamemath.IntegrateFatigue(
		fatigue.Value,
		state.CurrentState == cfg.Push,
		deltaTime(ecs),
		cfg.Fatigue.GainRate,
		cfg.Fatigue.DecayRate,
		cfg.Fatigue.Max,
	)
}

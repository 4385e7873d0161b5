package systems

import (
	"github.com/lofi/sisyphus-simulator/components"
	"github.com/yohamta/donburi/ecs"
)

// CommitState applies the pending locomotion state. It is the only place
// CurrentState changes.
func CommitState(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	components.State.Get(player).Commit()
}

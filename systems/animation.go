package systems

import (
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/lofi/sisyphus-simulator/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// SelectAnimation maps the committed state, ground contact and the sign of
// the attempted horizontal move onto a clip. It has no side effects.
func SelectAnimation(state cfg.StateID, grounded bool, moveSign float64) cfg.Clip {
	switch {
	case state == cfg.Setup:
		return cfg.ClipSetup
	case !grounded || state == cfg.Fall:
		return cfg.ClipFall
	case state == cfg.Hurt:
		return cfg.ClipHurt
	case state == cfg.Push:
		return cfg.ClipPush
	case state == cfg.Walk && moveSign != 0:
		return cfg.ClipWalk
	}
	return cfg.ClipIdle
}

// UpdateAnimation re-selects the player's clip every tick and advances it.
// Re-applying the clip that is already playing does not restart it.
func UpdateAnimation(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	state := components.State.Get(player)
	body := components.Body.Get(player)
	anim := components.Animation.Get(player)

	sign := gamemath.Sign(body.Feedback.DesiredTranslation.X)
	clip := SelectAnimation(state.CurrentState, body.Feedback.Grounded, sign)
	anim.SetAnimation(clip, cfg.PlayerAnimations[clip])
	anim.CurrentAnimation.Update()
}

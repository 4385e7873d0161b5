package components

import (
	"github.com/lofi/sisyphus-simulator/assets/animations"
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
)

// AnimationData references sheets by id; images are resolved at draw time.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentClip      config.Clip
	CurrentSheet     config.SheetID
	FrameWidth       int
	FrameHeight      int
}

// SetAnimation points the entity at a sheet and frame range. Assigning the
// range that is already playing is a no-op, so it is safe to call every tick.
func (a *AnimationData) SetAnimation(clip config.Clip, def config.AnimationDef) {
	a.CurrentClip = clip
	if a.CurrentAnimation != nil &&
		a.CurrentSheet == def.Sheet &&
		a.CurrentAnimation.First == def.First &&
		a.CurrentAnimation.Last == def.Last {
		return
	}

	a.CurrentSheet = def.Sheet
	if a.CurrentAnimation == nil {
		a.CurrentAnimation = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		return
	}
	a.CurrentAnimation.SetRange(def.First, def.Last, def.Step, def.Speed)
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()

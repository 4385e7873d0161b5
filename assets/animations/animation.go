package animations

// Animation cycles a frame index through [First, Last], advancing by Step
// every SpeedInTps ticks.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
}

// Update advances the timer by one tick. When it fires, a frame at or past
// Last, or before First, wraps to First.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		if a.frame >= a.Last || a.frame < a.First {
			if a.frame >= a.Last {
				a.Looped = true
			}
			a.frame = a.First
			return
		}
		a.frame += a.Step
		if a.frame > a.Last {
			a.frame = a.Last
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// SetRange changes the frame range without touching the current frame;
// an out-of-range frame wraps on the next fire.
func (a *Animation) SetRange(first, last, step int, speed float32) {
	a.First = first
	a.Last = last
	a.Step = step
	a.SpeedInTps = speed
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}

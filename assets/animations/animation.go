// Package animations steps frame ranges of a single-row sprite sheet.
package animations

// Mode decides what happens after the last frame.
type Mode int

const (
	Loop Mode = iota
	Once      // hold the last frame
)

type Animation struct {
	First  int
	Last   int
	Step   int     // sheet indices advanced per frame
	Speed  float32 // ticks each frame is shown
	Mode   Mode
	Looped bool // set the first time the range wraps or completes

	ticks float32
	frame int
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		Speed: speed,
		frame: first,
	}
}

// Update advances one tick.
func (a *Animation) Update() {
	a.ticks++
	if a.ticks < a.Speed {
		return
	}
	a.ticks = 0

	next := a.frame + a.Step
	if next <= a.Last {
		a.frame = next
		return
	}
	a.Looped = true
	if a.Mode == Loop {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
}

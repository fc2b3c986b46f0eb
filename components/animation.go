package components

import (
	"github.com/automoto/ferrisdive/assets/animations"
	"github.com/automoto/ferrisdive/config"
	"github.com/yohamta/donburi"
)

// AnimationData plays frame ranges out of a single sprite sheet. The
// renderer resolves SheetKey to an image through the assets cache.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	SheetKey         string
	FrameWidth       int
	FrameHeight      int
	FlipX            bool
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
			a.CurrentAnimation.Looped = false
		}
	} else {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

// Frame is the sheet index to draw, 0 when nothing is playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()

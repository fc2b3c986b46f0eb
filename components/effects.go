package components

import (
	"github.com/automoto/ferrisdive/shared/effects"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BubbleGeneratorData struct {
	effects.Generator
}

var BubbleGenerator = donburi.NewComponentType[BubbleGeneratorData]()

// BubbleData is a rising bubble. Its motion is relative to Origin, the
// generator's position when the bubble was spawned.
type BubbleData struct {
	effects.Bubble
	Origin math.Vec2
}

var Bubble = donburi.NewComponentType[BubbleData]()

// FlashData tracks sprite flash effect (damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

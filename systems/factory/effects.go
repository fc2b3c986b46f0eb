package factory

import (
	"math/rand/v2"

	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/effects"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateBubbleGenerator(w donburi.World, r *rand.Rand, x, y float64) *donburi.Entry {
	gen := archetypes.BubbleGenerator.Spawn(w)
	components.Object.SetValue(gen, components.ObjectData{Position: math.Vec2{X: x, Y: y}})
	components.BubbleGenerator.SetValue(gen, components.BubbleGeneratorData{Generator: effects.NewGenerator(r)})
	return gen
}

// SpawnBubble emits a bubble at origin, normally a generator's position.
func SpawnBubble(w donburi.World, r *rand.Rand, origin math.Vec2) *donburi.Entry {
	bubble := archetypes.Bubble.Spawn(w)
	b := effects.NewBubble(r)

	size := float64(cfg.Bubble.FrameSize)
	components.Bubble.SetValue(bubble, components.BubbleData{Bubble: b, Origin: origin})
	components.Object.SetValue(bubble, components.ObjectData{
		Position: origin.Add(b.Position()),
		Size:     math.Vec2{X: size, Y: size},
	})
	components.Sprite.SetValue(bubble, components.SpriteData{SheetKey: "bubble", Frame: b.Frame})

	return bubble
}

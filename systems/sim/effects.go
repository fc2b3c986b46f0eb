package sim

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/systems/factory"
	"github.com/automoto/ferrisdive/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEffects drives bubbles, the bite flash and the star spin.
func UpdateEffects(w donburi.World, r *rand.Rand, dt time.Duration) {
	updateBubbleGenerators(w, r, dt)
	updateBubbles(w, dt)
	updateFlashEffects(w)
	updatePickupAnimations(w)
}

func updateBubbleGenerators(w donburi.World, r *rand.Rand, dt time.Duration) {
	var origins []math.Vec2
	components.BubbleGenerator.Each(w, func(entry *donburi.Entry) {
		gen := components.BubbleGenerator.Get(entry)
		if gen.Tick(dt) {
			origins = append(origins, components.Object.Get(entry).Position)
		}
	})
	// spawn after the query so storage is not mutated mid-iteration
	for _, o := range origins {
		factory.SpawnBubble(w, r, o)
	}
}

func updateBubbles(w donburi.World, dt time.Duration) {
	var expired []donburi.Entity
	components.Bubble.Each(w, func(entry *donburi.Entry) {
		b := components.Bubble.Get(entry)
		if !b.Step(dt) {
			expired = append(expired, entry.Entity())
			return
		}
		components.Object.Get(entry).Position = b.Origin.Add(b.Position())
	})
	for _, ent := range expired {
		w.Remove(ent)
	}
}

func updateFlashEffects(w donburi.World) {
	components.Flash.Each(w, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updatePickupAnimations(w donburi.World) {
	tags.Pickup.Each(w, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

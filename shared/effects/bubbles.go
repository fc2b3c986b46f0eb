// Package effects holds the ambient bubble effect: generators that emit
// bubbles on a random period, and bubbles that spiral upward until they expire.
package effects

import (
	"math"
	"math/rand/v2"
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

const (
	minPeriod     = 3 * time.Second
	periodJitter  = 4 * time.Second
	maxLifetime   = 10 * time.Second
	risePerStep   = 0.3
	turnPerStep   = 0.1
	bubbleFrames  = 2
	initialOffset = 5.0
)

// Generator fires every Period, repeating.
type Generator struct {
	Period  time.Duration
	Elapsed time.Duration
}

func NewGenerator(r *rand.Rand) Generator {
	return Generator{Period: minPeriod + time.Duration(r.Float64()*float64(periodJitter))}
}

// Tick advances the generator and reports whether a bubble should spawn.
func (g *Generator) Tick(dt time.Duration) bool {
	g.Elapsed += dt
	if g.Elapsed < g.Period {
		return false
	}
	g.Elapsed -= g.Period
	return true
}

// Bubble positions are relative to the generator that spawned it.
type Bubble struct {
	Center   dmath.Vec2
	Offset   dmath.Vec2
	Lifetime time.Duration
	Age      time.Duration
	Frame    int
}

func NewBubble(r *rand.Rand) Bubble {
	return Bubble{
		Offset:   dmath.Vec2{X: 0, Y: initialOffset},
		Lifetime: time.Duration(r.Float64() * float64(maxLifetime)),
		Frame:    r.IntN(bubbleFrames),
	}
}

// Step moves the bubble one tick and reports whether it is still alive.
func (b *Bubble) Step(dt time.Duration) bool {
	b.Age += dt
	if b.Age >= b.Lifetime {
		return false
	}
	b.Center.Y += risePerStep
	sin, cos := math.Sincos(turnPerStep)
	b.Offset = dmath.Vec2{
		X: b.Offset.X*cos - b.Offset.Y*sin,
		Y: b.Offset.X*sin + b.Offset.Y*cos,
	}
	return true
}

// Position is the on-screen offset from the generator, snapped to whole units.
// The Y of the offset acts as depth, so only its X wobbles the bubble.
func (b *Bubble) Position() dmath.Vec2 {
	return dmath.Vec2{
		X: math.Floor(b.Center.X + b.Offset.X),
		Y: math.Floor(b.Center.Y),
	}
}

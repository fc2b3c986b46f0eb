package sim

import (
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Step advances the session clock and the space by one fixed tick.
func Step(w donburi.World) {
	level, ok := Level(w)
	if !ok {
		return
	}
	MustSession(w).Step(cfg.C.TPS)
	level.Physics.Step(TickDuration().Seconds())
}

// SyncObjects copies body positions back onto the objects after a step.
func SyncObjects(w donburi.World) {
	for e := range components.Physics.Iter(w) {
		p := components.Physics.Get(e).Body.Position()
		components.Object.Get(e).Position = math.Vec2{X: p.X, Y: p.Y}
	}
}

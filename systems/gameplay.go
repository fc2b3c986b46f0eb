package systems

import (
	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/systems/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getSessionEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return sim.SessionEntry(e.World)
}

func mustSession(e *ecs.ECS) *components.SessionData {
	return sim.MustSession(e.World)
}

func getLevel(w donburi.World) (*components.LevelData, bool) {
	return sim.Level(w)
}

// GetInput returns the polled input, nil before the session exists.
func GetInput(e *ecs.ECS) *components.InputData {
	return sim.Input(e.World)
}

// IsTerminal reports whether the session has ended in Died or Won.
func IsTerminal(e *ecs.ECS) bool {
	return sim.Terminal(e.World)
}

// WithGameplayChecks wraps a system to skip execution once the session is over
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsTerminal(e) {
			return
		}
		system(e)
	}
}

// Package sim runs one simulation tick over a donburi.World: movement,
// patrol, the physics step, contact handling, bites and level changes. It
// never imports ebitengine, so the whole tick can run headless; the systems
// package wraps these steps for the ecs pipeline.
package sim

import (
	"fmt"
	"time"

	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/tags"
	"github.com/yohamta/donburi"
)

// TickDuration is one fixed simulation step.
func TickDuration() time.Duration {
	return time.Second / time.Duration(cfg.C.TPS)
}

func SessionEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Session.First(w)
}

// MustSession returns the session singleton. Scenes create it before any
// system runs, so a missing one is a wiring bug.
func MustSession(w donburi.World) *components.SessionData {
	entry, ok := SessionEntry(w)
	if !ok {
		panic("no session entity")
	}
	return components.Session.Get(entry)
}

// Input returns the polled input, nil before the session exists.
func Input(w donburi.World) *components.InputData {
	entry, ok := SessionEntry(w)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

// MustPlayer returns the only player entity and panics when there is none
// or several.
func MustPlayer(w donburi.World) *donburi.Entry {
	var found *donburi.Entry
	n := 0
	tags.Player.Each(w, func(e *donburi.Entry) {
		found = e
		n++
	})
	if n != 1 {
		panic(fmt.Sprintf("expected exactly one player, found %d", n))
	}
	return found
}

func Level(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// Terminal reports whether the session has ended in Died or Won.
func Terminal(w donburi.World) bool {
	entry, ok := SessionEntry(w)
	if !ok {
		return false
	}
	return components.Session.Get(entry).State.Terminal()
}

// Classifier resolves a contact partner from the registry. Entities that
// went away earlier in the tick classify as KindOther.
func Classifier(w donburi.World) gameplay.Classifier {
	return func(ent donburi.Entity) gameplay.EntityKind {
		if !w.Valid(ent) {
			return gameplay.KindOther
		}
		entry := w.Entry(ent)
		switch {
		case entry.HasComponent(tags.Enemy):
			return gameplay.KindEnemy
		case entry.HasComponent(tags.Pickup):
			return gameplay.KindPickup
		case entry.HasComponent(tags.Goal):
			return gameplay.KindGoal
		}
		return gameplay.KindOther
	}
}

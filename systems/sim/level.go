package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// LoadLevel spawns lvl into the world, frames the camera on the player and
// logs what was built.
func LoadLevel(w donburi.World, lvl *leveldata.Level, r *rand.Rand) {
	level := factory.LoadLevel(w, lvl, r)
	pw := components.Level.Get(level).Physics
	SnapCamera(w)

	log.Info().
		Int("level", lvl.Index).
		Int("sprites", len(lvl.Tiles)).
		Int("colliders", pw.Colliders()).
		Int("spawns", len(lvl.Spawns)).
		Msg("level loaded")
	if lvl.Skipped > 0 {
		log.Debug().Int("level", lvl.Index).Int("skipped", lvl.Skipped).Msg("unrecognized objects skipped")
	}
}

// ChangeLevel performs a queued level change: full teardown, compile,
// spawn, then the session reset. It reports whether one happened.
func ChangeLevel(w donburi.World, set *leveldata.Set, r *rand.Rand) bool {
	session := MustSession(w)
	if session.Pending == nil || !session.Pending.ChangeLevel {
		return false
	}
	next := session.Pending.NextLevel
	session.Pending = nil

	removed := factory.TeardownLevel(w)
	lvl, err := set.Load(next)
	if err != nil {
		panic(fmt.Sprintf("load level %d: %v", next, err))
	}
	LoadLevel(w, lvl, r)
	session.ResetForLevel(lvl.Index)

	log.Info().Int("level", lvl.Index).Int("removed", removed).Msg("level changed")
	return true
}

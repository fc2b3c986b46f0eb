package sim

import (
	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Collide feeds the contacts of the last step through the dispatcher and
// the state machine, then applies the outcome: pickups are despawned and a
// goal either ends the session or queues a level change on the session.
func Collide(w donburi.World, advanceOnGoal bool) gameplay.Outcome {
	level, ok := Level(w)
	if !ok {
		return gameplay.Outcome{}
	}
	contacts := level.Physics.DrainContacts()
	if len(contacts) == 0 {
		return gameplay.Outcome{}
	}

	session := MustSession(w)
	player := MustPlayer(w)
	classify := Classifier(w)

	events := gameplay.Dispatch(session.Session, contacts, player.Entity())
	trackEnemyContacts(w, events, classify)

	out := gameplay.HandleCollisions(session.Session, events, classify, advanceOnGoal)

	for _, ent := range out.Despawn {
		level.Physics.Remove(ent)
		w.Remove(ent)
		log.Debug().Int("health", session.Health).Msg("pickup collected")
	}

	if out.ChangeLevel {
		log.Info().Int("level", session.LevelIndex).Int("next", out.NextLevel).Msg("goal reached")
		session.Pending = &out
	}
	if out.Entered == gameplay.Won {
		log.Info().Int("level", session.LevelIndex).Int("health", session.Health).Msg("won")
	}
	return out
}

// trackEnemyContacts keeps each fish's overlap flag, which gates its bite
// animation.
func trackEnemyContacts(w donburi.World, events []gameplay.PlayerCollision, classify gameplay.Classifier) {
	for _, ev := range events {
		if classify(ev.Other) != gameplay.KindEnemy {
			continue
		}
		enemy := components.Enemy.Get(w.Entry(ev.Other))
		enemy.Touching = ev.Phase == gameplay.Started
	}
}

// biteFlashTicks is how long the crab flashes red after a bite.
const biteFlashTicks = 12

// Bite meters damage while a fish overlaps the crab and reports whether a
// bite landed this tick.
func Bite(w donburi.World) bool {
	session := MustSession(w)
	if !gameplay.CheckHits(session.Session) {
		return false
	}

	flash := components.Flash.Get(MustPlayer(w))
	flash.Duration = biteFlashTicks
	flash.R, flash.G, flash.B = 1, 0.2, 0.2

	log.Debug().Int("health", session.Health).Msg("bitten")
	if session.State == gameplay.Died {
		log.Info().Int("level", session.LevelIndex).Msg("died")
	}
	return true
}

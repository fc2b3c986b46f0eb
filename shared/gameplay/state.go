package gameplay

import "github.com/yohamta/donburi"

type EntityKind int

const (
	KindOther EntityKind = iota
	KindEnemy
	KindPickup
	KindGoal
)

// Classifier looks up what an entity is in the registry.
type Classifier func(donburi.Entity) EntityKind

// Outcome lists the registry changes the caller must apply after
// HandleCollisions returns.
type Outcome struct {
	Despawn     []donburi.Entity
	ChangeLevel bool
	NextLevel   int
	Entered     GameState // InGame unless this batch ended the session
}

// HandleCollisions applies one tick's player collisions to the session.
// A goal ends the batch: either the session is won or a level change is
// requested, and later events refer to a level that is going away.
func HandleCollisions(s *Session, events []PlayerCollision, classify Classifier, advanceOnGoal bool) Outcome {
	var out Outcome
	if s.State.Terminal() {
		return out
	}

	for _, ev := range events {
		switch classify(ev.Other) {
		case KindEnemy:
			if ev.Phase == Started {
				s.Hit = HitState{Active: true, Since: s.Clock}
			} else {
				s.Hit.Active = false
			}
		case KindPickup:
			if ev.Phase != Started || containsEntity(out.Despawn, ev.Other) {
				continue
			}
			s.Health += s.PickupValue()
			out.Despawn = append(out.Despawn, ev.Other)
		case KindGoal:
			if ev.Phase != Started {
				continue
			}
			if advanceOnGoal && s.LevelCount > 0 {
				out.ChangeLevel = true
				out.NextLevel = (s.LevelIndex + 1) % s.LevelCount
			} else if s.Enter(Won) {
				out.Entered = Won
			}
			return out
		}
	}
	return out
}

// CheckHits meters bite damage while the player touches an enemy. It applies
// at most one bite per BiteInterval and reports whether it did. A finished
// session takes no more bites.
func CheckHits(s *Session) bool {
	if s.State.Terminal() || !s.Hit.Active || s.Clock-s.Hit.Since < s.Rules.BiteInterval {
		return false
	}

	damage := s.BiteDamage()
	if s.Health > damage {
		s.Health -= damage
	} else {
		s.Health = 0
		s.Enter(Died)
	}
	s.Hit.Since = s.Clock
	return true
}

func containsEntity(list []donburi.Entity, e donburi.Entity) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}

package gameplay

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// GroundNormalThreshold is the minimum upward component of a player-side
// contact normal that counts as standing on something.
const GroundNormalThreshold = 0.9

type Phase int

const (
	Started Phase = iota
	Stopped
)

func (p Phase) String() string {
	if p == Stopped {
		return "stopped"
	}
	return "started"
}

// Contact is a raw begin/separate signal between two bodies. Normal is the
// contact normal as seen from A: it points out of B into A.
type Contact struct {
	A, B   donburi.Entity
	Phase  Phase
	Normal dmath.Vec2
}

// PlayerCollision is a contact seen from the player's side. Normal points
// into the player.
type PlayerCollision struct {
	Other  donburi.Entity
	Phase  Phase
	Normal dmath.Vec2
}

// Dispatch keeps the contacts that involve the player, in order, reoriented
// so the player is always the first side. Any of them with a ground-like
// normal resets the jump counter.
func Dispatch(s *Session, contacts []Contact, player donburi.Entity) []PlayerCollision {
	var out []PlayerCollision
	for _, c := range contacts {
		var pc PlayerCollision
		switch player {
		case c.A:
			pc = PlayerCollision{Other: c.B, Phase: c.Phase, Normal: c.Normal}
		case c.B:
			pc = PlayerCollision{Other: c.A, Phase: c.Phase, Normal: dmath.Vec2{X: -c.Normal.X, Y: -c.Normal.Y}}
		default:
			continue
		}
		if pc.Normal.Y >= GroundNormalThreshold {
			s.Jumps = 0
		}
		out = append(out, pc)
	}
	return out
}

package gameplay

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1.
func (f Facing) Sign() float64 {
	return float64(f)
}

type EnemyAnim int

const (
	AnimPatrol EnemyAnim = iota
	AnimBite
)

// Patrol is an enemy's facing and horizontal bounds around its spawn.
type Patrol struct {
	Facing Facing
	Left   float64
	Right  float64
	Anim   EnemyAnim
}

func NewPatrol(spawnX, halfRange float64) Patrol {
	return Patrol{
		Facing: FacingLeft,
		Left:   spawnX - halfRange,
		Right:  spawnX + halfRange,
		Anim:   AnimPatrol,
	}
}

// UpdatePatrol returns the horizontal velocity for this tick, taken from the
// facing the enemy had coming in, then picks the facing and animation for
// the next one. A reached bound always wins over turning toward the player.
func UpdatePatrol(p *Patrol, enemy, player dmath.Vec2, proximity bool, speed float64, r Rules) float64 {
	vx := p.Facing.Sign() * speed

	dx := player.X - enemy.X
	dy := player.Y - enemy.Y
	p.Anim = AnimPatrol
	if math.Abs(dy) <= r.VerticalRange {
		switch {
		case math.Abs(dx) <= r.BiteRange && proximity:
			p.Facing = toward(dx)
			p.Anim = AnimBite
		case math.Abs(dx) <= r.PatrolRange:
			p.Facing = toward(dx)
		}
	}

	if enemy.X >= p.Right {
		p.Facing = FacingLeft
	} else if enemy.X <= p.Left {
		p.Facing = FacingRight
	}
	return vx
}

func toward(dx float64) Facing {
	if dx < 0 {
		return FacingLeft
	}
	return FacingRight
}

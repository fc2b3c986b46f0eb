// Package gameplay is the collision-driven core of the game: the session
// context, the contact dispatcher, the health/hit/goal state machine and the
// enemy patrol rules. It never touches the renderer or the physics engine.
package gameplay

import (
	"time"

	"github.com/automoto/ferrisdive/shared/advantage"
)

type GameState int

const (
	InGame GameState = iota
	Died
	Won
)

func (g GameState) String() string {
	switch g {
	case Died:
		return "died"
	case Won:
		return "won"
	}
	return "in_game"
}

// Terminal reports whether no gameplay system may run in this state.
func (g GameState) Terminal() bool {
	return g == Died || g == Won
}

// HitState tracks contact with an enemy. Since is the last time damage was
// metered, or when contact began.
type HitState struct {
	Active bool
	Since  time.Duration
}

// Rules holds the tuning read by the state machine and enemy patrol.
type Rules struct {
	BiteInterval time.Duration `yaml:"bite_interval"`
	BiteStrong   int           `yaml:"bite_strong"`
	BiteWeak     int           `yaml:"bite_weak"`
	PickupStrong int           `yaml:"pickup_strong"`
	PickupWeak   int           `yaml:"pickup_weak"`

	PatrolSpeed           float64 `yaml:"patrol_speed"`
	PatrolSpeedFast       float64 `yaml:"patrol_speed_fast"`
	VerticalRange         float64 `yaml:"vertical_range"`
	BiteRange             float64 `yaml:"bite_range"`
	PatrolRange           float64 `yaml:"patrol_range"`
	DefaultPatrolDistance float64 `yaml:"default_patrol_distance"`

	MaxJumps       int `yaml:"max_jumps"`
	MaxJumpsDouble int `yaml:"max_jumps_double"`

	DefaultHealth int `yaml:"default_health"`
}

// DefaultRules returns the stock tuning.
func DefaultRules() Rules {
	return Rules{
		BiteInterval: 300 * time.Millisecond,
		BiteStrong:   3,
		BiteWeak:     1,
		PickupStrong: 2,
		PickupWeak:   1,

		PatrolSpeed:           100,
		PatrolSpeedFast:       170,
		VerticalRange:         70,
		BiteRange:             50,
		PatrolRange:           70,
		DefaultPatrolDistance: 48,

		MaxJumps:       1,
		MaxJumpsDouble: 2,

		DefaultHealth: 5,
	}
}

// Session is the shared per-playthrough state. Only the state machine writes
// State, Health and Hit; the dispatcher writes Jumps.
type Session struct {
	State      GameState
	Health     int
	Hit        HitState
	Advantage  advantage.Advantage
	Jumps      int
	LevelIndex int
	LevelCount int
	Clock      time.Duration
	Steps      int64 // fixed steps taken by Step
	Rules      Rules
}

func NewSession(adv advantage.Advantage, health, levelIndex, levelCount int, rules Rules) *Session {
	if health <= 0 {
		health = rules.DefaultHealth
	}
	return &Session{
		State:      InGame,
		Health:     health,
		Advantage:  adv,
		LevelIndex: levelIndex,
		LevelCount: levelCount,
		Rules:      rules,
	}
}

// Tick advances the simulation clock by dt.
func (s *Session) Tick(dt time.Duration) {
	s.Clock += dt
}

// Step advances the clock by one step of a loop running rate steps per
// second. The clock is derived from the step count, so rate steps always
// add up to exactly one second.
func (s *Session) Step(rate int) {
	s.Steps++
	s.Clock = ClockAt(s.Steps, rate)
}

// ClockAt is the simulation time after n steps at rate steps per second.
func ClockAt(n int64, rate int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(rate)
}

// Enter moves the session into a terminal state. Only InGame may leave, and
// only once; the return value is true on the tick the transition happens.
func (s *Session) Enter(state GameState) bool {
	if s.State != InGame || !state.Terminal() {
		return false
	}
	s.State = state
	return true
}

// ResetForLevel clears per-level transient state after a level change.
// Health and the advantage carry over.
func (s *Session) ResetForLevel(index int) {
	s.LevelIndex = index
	s.Hit = HitState{}
	s.Jumps = 0
}

func (s *Session) JumpLimit() int {
	if s.Advantage == advantage.PlayerDoubleJump {
		return s.Rules.MaxJumpsDouble
	}
	return s.Rules.MaxJumps
}

// CanJump reports whether another jump is allowed before touching ground.
func (s *Session) CanJump() bool {
	return s.Jumps < s.JumpLimit()
}

func (s *Session) BiteDamage() int {
	if s.Advantage == advantage.EnemyDoubleBite {
		return s.Rules.BiteStrong
	}
	return s.Rules.BiteWeak
}

func (s *Session) PickupValue() int {
	if s.Advantage == advantage.PlayerDoubleHp {
		return s.Rules.PickupStrong
	}
	return s.Rules.PickupWeak
}

func (s *Session) EnemySpeed() float64 {
	if s.Advantage == advantage.EnemyDoubleSpeed {
		return s.Rules.PatrolSpeedFast
	}
	return s.Rules.PatrolSpeed
}

// Snapshot is the read-only view handed to the HUD.
type Snapshot struct {
	Health     int
	Advantage  advantage.Advantage
	State      GameState
	LevelIndex int
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Health:     s.Health,
		Advantage:  s.Advantage,
		State:      s.State,
		LevelIndex: s.LevelIndex,
	}
}

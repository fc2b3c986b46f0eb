package gameplay

import (
	"testing"
	"time"

	"github.com/automoto/ferrisdive/shared/advantage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var testTag = donburi.NewTag().SetName("test")

type registry struct {
	world donburi.World
	kinds map[donburi.Entity]EntityKind
}

func newRegistry() *registry {
	return &registry{world: donburi.NewWorld(), kinds: map[donburi.Entity]EntityKind{}}
}

func (r *registry) spawn(kind EntityKind) donburi.Entity {
	e := r.world.Create(testTag)
	r.kinds[e] = kind
	return e
}

func (r *registry) classify(e donburi.Entity) EntityKind {
	return r.kinds[e]
}

func up() dmath.Vec2 { return dmath.Vec2{X: 0, Y: 1} }

func TestDispatchOrientsBothOrderings(t *testing.T) {
	reg := newRegistry()
	player := reg.spawn(KindOther)
	enemy := reg.spawn(KindEnemy)
	wall := reg.spawn(KindOther)
	floor := reg.spawn(KindOther)

	s := NewSession(advantage.PlayerDoubleJump, 5, 0, 1, DefaultRules())
	contacts := []Contact{
		{A: player, B: enemy, Phase: Started, Normal: dmath.Vec2{X: 1}},
		{A: wall, B: floor, Phase: Started, Normal: up()},
		{A: enemy, B: player, Phase: Stopped, Normal: dmath.Vec2{X: 1}},
	}

	got := Dispatch(s, contacts, player)
	require.Len(t, got, 2)
	assert.Equal(t, PlayerCollision{Other: enemy, Phase: Started, Normal: dmath.Vec2{X: 1}}, got[0])
	assert.Equal(t, PlayerCollision{Other: enemy, Phase: Stopped, Normal: dmath.Vec2{X: -1}}, got[1])
}

func TestDispatchGroundResetsJumps(t *testing.T) {
	reg := newRegistry()
	player := reg.spawn(KindOther)
	floor := reg.spawn(KindOther)

	tests := []struct {
		name    string
		contact Contact
		reset   bool
	}{
		{"player on top as A", Contact{A: player, B: floor, Phase: Started, Normal: up()}, true},
		{"player on top as B", Contact{A: floor, B: player, Phase: Started, Normal: dmath.Vec2{Y: -1}}, true},
		{"separation still counts", Contact{A: player, B: floor, Phase: Stopped, Normal: up()}, true},
		{"steep slope", Contact{A: player, B: floor, Phase: Started, Normal: dmath.Vec2{X: 0.5, Y: 0.85}}, false},
		{"ceiling", Contact{A: player, B: floor, Phase: Started, Normal: dmath.Vec2{Y: -1}}, false},
		{"not the player", Contact{A: floor, B: floor, Phase: Started, Normal: up()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(advantage.PlayerDoubleJump, 5, 0, 1, DefaultRules())
			s.Jumps = 2
			Dispatch(s, []Contact{tt.contact}, player)
			if tt.reset {
				assert.Equal(t, 0, s.Jumps)
			} else {
				assert.Equal(t, 2, s.Jumps)
			}
		})
	}
}

// Continuous contact with a strong bite, checked every 300ms.
func TestCheckHitsDoubleBiteKills(t *testing.T) {
	reg := newRegistry()
	enemy := reg.spawn(KindEnemy)
	s := NewSession(advantage.EnemyDoubleBite, 5, 0, 1, DefaultRules())

	HandleCollisions(s, []PlayerCollision{{Other: enemy, Phase: Started}}, reg.classify, false)
	require.True(t, s.Hit.Active)

	applied := 0
	for i := 0; i < 3; i++ {
		s.Tick(300 * time.Millisecond)
		if CheckHits(s) {
			applied++
		}
	}

	// 5 -> 2 -> 0; the third interval finds the session already over
	assert.Equal(t, 2, applied)
	assert.Equal(t, 0, s.Health)
	assert.Equal(t, Died, s.State)
}

func TestCheckHitsIgnoresFinishedSession(t *testing.T) {
	for _, state := range []GameState{Died, Won} {
		t.Run(state.String(), func(t *testing.T) {
			s := NewSession(advantage.EnemyDoubleBite, 5, 0, 1, DefaultRules())
			s.Hit = HitState{Active: true}
			s.State = state
			s.Tick(time.Second)

			assert.False(t, CheckHits(s))
			assert.Equal(t, 5, s.Health)
			assert.Equal(t, time.Duration(0), s.Hit.Since)
		})
	}
}

func TestStepKeepsExactTime(t *testing.T) {
	s := NewSession(advantage.PlayerDoubleJump, 5, 0, 1, DefaultRules())
	for i := 0; i < 60*5; i++ {
		s.Step(60)
	}
	assert.Equal(t, 5*time.Second, s.Clock)
	assert.Equal(t, int64(300), s.Steps)

	// any 18 steps at 60/s span exactly one bite interval
	for _, n := range []int64{0, 1, 2, 7, 41} {
		assert.Equal(t, 300*time.Millisecond, ClockAt(n+18, 60)-ClockAt(n, 60))
	}
}

// Contact for 900ms of 60Hz steps bites three times.
func TestCheckHitsAtFixedRate(t *testing.T) {
	s := NewSession(advantage.PlayerDoubleJump, 5, 0, 1, DefaultRules())
	s.Step(60)
	s.Hit = HitState{Active: true, Since: s.Clock}

	bites := 0
	for i := 0; i < 54; i++ {
		s.Step(60)
		if CheckHits(s) {
			bites++
		}
	}
	assert.Equal(t, 3, bites)
	assert.Equal(t, 2, s.Health)
}

func TestCheckHitsOncePerInterval(t *testing.T) {
	reg := newRegistry()
	enemy := reg.spawn(KindEnemy)
	s := NewSession(advantage.PlayerDoubleJump, 5, 0, 1, DefaultRules())
	HandleCollisions(s, []PlayerCollision{{Other: enemy, Phase: Started}}, reg.classify, false)

	s.Tick(299 * time.Millisecond)
	assert.False(t, CheckHits(s))
	assert.Equal(t, 5, s.Health)

	s.Tick(time.Millisecond)
	assert.True(t, CheckHits(s))
	assert.Equal(t, 4, s.Health)

	// a second check in the same instant does nothing
	assert.False(t, CheckHits(s))
	assert.Equal(t, 4, s.Health)

	// 16ms frames for 600ms yield exactly two more bites
	bites := 0
	for elapsed := time.Duration(0); elapsed < 600*time.Millisecond; elapsed += 16 * time.Millisecond {
		s.Tick(16 * time.Millisecond)
		if CheckHits(s) {
			bites++
		}
	}
	assert.Equal(t, 2, bites)
	assert.Equal(t, 2, s.Health)

	HandleCollisions(s, []PlayerCollision{{Other: enemy, Phase: Stopped}}, reg.classify, false)
	s.Tick(time.Second)
	assert.False(t, CheckHits(s))
	assert.Equal(t, 2, s.Health)
}

func TestCheckHitsClampsAtZero(t *testing.T) {
	s := NewSession(advantage.EnemyDoubleBite, 2, 0, 1, DefaultRules())
	s.Hit = HitState{Active: true}
	s.Tick(300 * time.Millisecond)

	require.True(t, CheckHits(s))
	assert.Equal(t, 0, s.Health)
	assert.Equal(t, Died, s.State)
}

func TestPickupDoubleHp(t *testing.T) {
	reg := newRegistry()
	star := reg.spawn(KindPickup)
	s := NewSession(advantage.PlayerDoubleHp, 5, 0, 1, DefaultRules())

	out := HandleCollisions(s, []PlayerCollision{
		{Other: star, Phase: Started},
		{Other: star, Phase: Started},
		{Other: star, Phase: Stopped},
	}, reg.classify, false)

	assert.Equal(t, 7, s.Health)
	assert.Equal(t, []donburi.Entity{star}, out.Despawn)
}

func TestPickupWithoutAdvantage(t *testing.T) {
	reg := newRegistry()
	star := reg.spawn(KindPickup)
	s := NewSession(advantage.EnemyDoubleSpeed, 5, 0, 1, DefaultRules())

	HandleCollisions(s, []PlayerCollision{{Other: star, Phase: Started}}, reg.classify, false)
	assert.Equal(t, 6, s.Health)
}

func TestGoal(t *testing.T) {
	reg := newRegistry()
	goal := reg.spawn(KindGoal)
	star := reg.spawn(KindPickup)
	events := []PlayerCollision{
		{Other: goal, Phase: Started},
		{Other: star, Phase: Started},
	}

	t.Run("wins without level advance", func(t *testing.T) {
		s := NewSession(advantage.PlayerDoubleJump, 5, 0, 3, DefaultRules())
		out := HandleCollisions(s, events, reg.classify, false)
		assert.Equal(t, Won, s.State)
		assert.Equal(t, Won, out.Entered)
		assert.False(t, out.ChangeLevel)
		assert.Empty(t, out.Despawn, "events after the goal are not processed")
	})

	t.Run("advances and wraps", func(t *testing.T) {
		s := NewSession(advantage.PlayerDoubleJump, 5, 2, 3, DefaultRules())
		out := HandleCollisions(s, events, reg.classify, true)
		assert.Equal(t, InGame, s.State)
		assert.Equal(t, InGame, out.Entered)
		assert.True(t, out.ChangeLevel)
		assert.Equal(t, 0, out.NextLevel)
	})

	t.Run("goal separation is ignored", func(t *testing.T) {
		s := NewSession(advantage.PlayerDoubleJump, 5, 0, 3, DefaultRules())
		HandleCollisions(s, []PlayerCollision{{Other: goal, Phase: Stopped}}, reg.classify, false)
		assert.Equal(t, InGame, s.State)
	})
}

func TestTerminalStatesAreFinal(t *testing.T) {
	reg := newRegistry()
	star := reg.spawn(KindPickup)
	goal := reg.spawn(KindGoal)

	s := NewSession(advantage.PlayerDoubleHp, 5, 0, 1, DefaultRules())
	require.True(t, s.Enter(Died))
	assert.False(t, s.Enter(Won))
	assert.False(t, s.Enter(Died))
	assert.Equal(t, Died, s.State)

	out := HandleCollisions(s, []PlayerCollision{
		{Other: star, Phase: Started},
		{Other: goal, Phase: Started},
	}, reg.classify, true)
	assert.Equal(t, 5, s.Health)
	assert.Empty(t, out.Despawn)
	assert.False(t, out.ChangeLevel)

	assert.False(t, NewSession(0, 5, 0, 1, DefaultRules()).Enter(InGame))
}

func TestAdvantageReaders(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		adv    advantage.Advantage
		jumps  int
		bite   int
		pickup int
		speed  float64
	}{
		{advantage.PlayerDoubleJump, 2, 1, 1, 100},
		{advantage.PlayerDoubleHp, 1, 1, 2, 100},
		{advantage.EnemyDoubleBite, 1, 3, 1, 100},
		{advantage.EnemyDoubleSpeed, 1, 1, 1, 170},
	}
	for _, tt := range tests {
		t.Run(tt.adv.String(), func(t *testing.T) {
			s := NewSession(tt.adv, 0, 0, 1, r)
			assert.Equal(t, r.DefaultHealth, s.Health)
			assert.Equal(t, tt.jumps, s.JumpLimit())
			assert.Equal(t, tt.bite, s.BiteDamage())
			assert.Equal(t, tt.pickup, s.PickupValue())
			assert.Equal(t, tt.speed, s.EnemySpeed())
		})
	}
}

func TestResetForLevelKeepsHealth(t *testing.T) {
	s := NewSession(advantage.PlayerDoubleJump, 9, 0, 2, DefaultRules())
	s.Hit = HitState{Active: true, Since: time.Second}
	s.Jumps = 2

	s.ResetForLevel(1)
	assert.Equal(t, 1, s.LevelIndex)
	assert.Equal(t, 9, s.Health)
	assert.False(t, s.Hit.Active)
	assert.Equal(t, 0, s.Jumps)
	assert.Equal(t, Snapshot{Health: 9, Advantage: advantage.PlayerDoubleJump, State: InGame, LevelIndex: 1}, s.Snapshot())
}

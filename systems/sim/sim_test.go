package sim

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/ferrisdive/assets/levels"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/advantage"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/systems/factory"
	"github.com/automoto/ferrisdive/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

type dive struct {
	w   donburi.World
	set *leveldata.Set
	r   *rand.Rand
}

// newDive starts a session on the first embedded level.
func newDive(t *testing.T, adv advantage.Advantage) *dive {
	t.Helper()
	set := levels.NewSet()
	lvl, err := set.Load(0)
	require.NoError(t, err)

	d := &dive{w: donburi.NewWorld(), set: set, r: rand.New(rand.NewPCG(7, 11))}
	factory.CreateSession(d.w, gameplay.NewSession(adv, lvl.InitialHealth, lvl.Index, set.Len(), cfg.Gameplay))
	factory.CreateCamera(d.w, dmath.Vec2{})
	LoadLevel(d.w, lvl, d.r)
	return d
}

// tick runs the gameplay half of a frame the way the scene orders it.
func (d *dive) tick(advanceOnGoal bool) {
	if Terminal(d.w) {
		return
	}
	MovePlayer(d.w)
	PatrolEnemies(d.w)
	Step(d.w)
	SyncObjects(d.w)
	Collide(d.w, advanceOnGoal)
	Bite(d.w)
	ChangeLevel(d.w, d.set, d.r)
	UpdateEffects(d.w, d.r, TickDuration())
	FollowCamera(d.w)
}

func (d *dive) run(n int, advanceOnGoal bool) {
	for i := 0; i < n; i++ {
		d.tick(advanceOnGoal)
	}
}

// teleport puts the crab at p at rest.
func (d *dive) teleport(p dmath.Vec2) {
	level, _ := Level(d.w)
	player := MustPlayer(d.w)
	level.Physics.SetPosition(player.Entity(), p)
	level.Physics.SetVelocity(player.Entity(), dmath.Vec2{})
}

func (d *dive) session() *components.SessionData {
	return MustSession(d.w)
}

func (d *dive) press(a cfg.ActionID) {
	in := Input(d.w)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Current[a] = true
}

func (d *dive) release() {
	in := Input(d.w)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func first(t *testing.T, w donburi.World, tag *donburi.ComponentType[donburi.Tag]) *donburi.Entry {
	t.Helper()
	e, ok := tag.First(w)
	require.True(t, ok)
	return e
}

func count(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

func TestCrabLandsOnStart(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)
	d.run(40, false)

	player := MustPlayer(d.w)
	assert.True(t, components.Player.Get(player).Grounded)
	assert.Equal(t, gameplay.InGame, d.session().State)
	assert.Equal(t, 10, d.session().Health)
}

func TestPickupCollectedOnce(t *testing.T) {
	d := newDive(t, advantage.EnemyDoubleSpeed)
	stars := count(d.w, tags.Pickup)
	star := first(t, d.w, tags.Pickup)
	at := components.Object.Get(star).Position
	starEntity := star.Entity()

	d.teleport(at)
	d.tick(false)
	d.teleport(at)
	d.run(5, false)

	assert.Equal(t, 10+cfg.Gameplay.PickupWeak, d.session().Health)
	assert.Equal(t, stars-1, count(d.w, tags.Pickup))
	assert.False(t, d.w.Valid(starEntity))
	assert.Equal(t, gameplay.KindOther, Classifier(d.w)(starEntity))
}

func TestPickupStrongWithDoubleHp(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)
	d.teleport(components.Object.Get(first(t, d.w, tags.Pickup)).Position)
	d.tick(false)

	assert.Equal(t, 10+cfg.Gameplay.PickupStrong, d.session().Health)
}

func TestGoalWinsWithoutChangeMap(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleJump)
	goal := components.Object.Get(first(t, d.w, tags.Goal)).Position

	d.teleport(goal)
	d.tick(false)

	require.True(t, Terminal(d.w))
	assert.Equal(t, gameplay.Won, d.session().State)
	assert.Nil(t, d.session().Pending)

	// nothing moves once the session is over
	clock := d.session().Clock
	d.run(10, false)
	assert.Equal(t, clock, d.session().Clock)
}

func TestGoalAdvancesWithChangeMap(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleJump)
	d.session().Health = 7
	d.session().Jumps = 1
	goal := components.Object.Get(first(t, d.w, tags.Goal)).Position
	oldLevel, _ := Level(d.w)
	oldPhysics := oldLevel.Physics
	old := []donburi.Entity{
		first(t, d.w, tags.Level).Entity(),
		first(t, d.w, tags.Enemy).Entity(),
		first(t, d.w, tags.Pickup).Entity(),
		first(t, d.w, tags.Goal).Entity(),
	}

	d.teleport(goal)
	d.tick(true)

	for _, e := range old {
		assert.False(t, d.w.Valid(e), "entity from level 0 still queryable")
	}

	s := d.session()
	assert.Equal(t, gameplay.InGame, s.State)
	assert.Equal(t, 1, s.LevelIndex)
	assert.Equal(t, 7, s.Health, "health carries across levels")
	assert.Equal(t, 0, s.Jumps)
	assert.False(t, s.Hit.Active)
	assert.Nil(t, s.Pending)

	next, err := d.set.Load(1)
	require.NoError(t, err)
	level, ok := Level(d.w)
	require.True(t, ok)
	assert.Equal(t, 1, level.Level.Index)
	assert.NotSame(t, oldPhysics, level.Physics)
	assert.Equal(t, 1, count(d.w, tags.Level))
	assert.Equal(t, 1, count(d.w, tags.Player))

	var enemies, stars int
	for _, sp := range next.Spawns {
		switch sp.Kind {
		case leveldata.SpawnEnemy:
			enemies++
		case leveldata.SpawnPickup:
			stars++
		}
	}
	assert.Equal(t, enemies, count(d.w, tags.Enemy))
	assert.Equal(t, stars, count(d.w, tags.Pickup))

	start, ok := next.PlayerStart()
	require.True(t, ok)
	pos := components.Object.Get(MustPlayer(d.w)).Position
	assert.InDelta(t, start.X, pos.X, 0.001)
	assert.InDelta(t, start.Y, pos.Y, 0.001)

	d.run(30, true)
	assert.Equal(t, 1, d.session().LevelIndex)
}

func TestGoalOnLastLevelWrapsToFirst(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleJump)
	d.session().Pending = &gameplay.Outcome{ChangeLevel: true, NextLevel: 1}
	require.True(t, ChangeLevel(d.w, d.set, d.r))

	d.teleport(components.Object.Get(first(t, d.w, tags.Goal)).Position)
	d.tick(true)

	assert.Equal(t, 0, d.session().LevelIndex)
	assert.Equal(t, gameplay.InGame, d.session().State)
}

// holdOnFish keeps the crab parked on the first fish for n ticks. The boxes
// must not be concentric or cp finds no separating axis and reports nothing.
func (d *dive) holdOnFish(t *testing.T, n int) *donburi.Entry {
	fish := first(t, d.w, tags.Enemy)
	for i := 0; i < n && !Terminal(d.w); i++ {
		d.teleport(components.Object.Get(fish).Position.Add(dmath.Vec2{X: 6}))
		Step(d.w)
		SyncObjects(d.w)
		Collide(d.w, false)
		Bite(d.w)
	}
	return fish
}

func TestBiteMetersDamage(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleJump)

	fish := d.holdOnFish(t, 30)

	assert.Equal(t, 10-cfg.Gameplay.BiteWeak, d.session().Health)
	assert.True(t, d.session().Hit.Active)
	assert.True(t, components.Enemy.Get(fish).Touching)
	assert.Equal(t, float32(1), components.Flash.Get(MustPlayer(d.w)).R)
}

// 60 ticks are exactly one second, so a bite lands every 18 ticks of contact.
func TestBiteCadenceAtTickRate(t *testing.T) {
	d := newDive(t, advantage.EnemyDoubleBite)

	// contact begins on the first tick
	d.holdOnFish(t, 1+2*18)
	assert.Equal(t, 10-2*cfg.Gameplay.BiteStrong, d.session().Health)

	d.holdOnFish(t, 17)
	assert.Equal(t, 10-2*cfg.Gameplay.BiteStrong, d.session().Health)

	d.holdOnFish(t, 1)
	assert.Equal(t, 10-3*cfg.Gameplay.BiteStrong, d.session().Health)
	assert.Equal(t, gameplay.InGame, d.session().State)
	assert.Equal(t, 900*time.Millisecond, d.session().Hit.Since-gameplay.ClockAt(1, cfg.C.TPS))
}

func TestNoBiteBeforeInterval(t *testing.T) {
	d := newDive(t, advantage.EnemyDoubleBite)

	d.holdOnFish(t, 10)

	assert.Equal(t, 10, d.session().Health)
	assert.True(t, d.session().Hit.Active)
}

func TestBiteKills(t *testing.T) {
	d := newDive(t, advantage.EnemyDoubleBite)
	d.session().Health = cfg.Gameplay.BiteStrong

	d.holdOnFish(t, 60)

	assert.Equal(t, gameplay.Died, d.session().State)
	assert.Equal(t, 0, d.session().Health)
	assert.True(t, Terminal(d.w))
}

func TestLeavingFishStopsBites(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleJump)
	fish := d.holdOnFish(t, 5)

	d.teleport(dmath.Vec2{X: 48, Y: 180})
	for i := 0; i < 40; i++ {
		Step(d.w)
		SyncObjects(d.w)
		Collide(d.w, false)
		Bite(d.w)
	}

	assert.Equal(t, 10, d.session().Health)
	assert.False(t, d.session().Hit.Active)
	assert.False(t, components.Enemy.Get(fish).Touching)
}

func TestJumpLimit(t *testing.T) {
	for _, tc := range []struct {
		adv   advantage.Advantage
		jumps int
	}{
		{advantage.PlayerDoubleHp, 1},
		{advantage.PlayerDoubleJump, 2},
	} {
		t.Run(tc.adv.String(), func(t *testing.T) {
			d := newDive(t, tc.adv)
			d.run(40, false)
			require.True(t, components.Player.Get(MustPlayer(d.w)).Grounded)

			for i := 0; i < 3; i++ {
				d.press(cfg.ActionJump)
				d.tick(false)
				d.release()
				d.tick(false)
			}
			assert.Equal(t, tc.jumps, d.session().Jumps)
			assert.Greater(t, components.Object.Get(MustPlayer(d.w)).Position.Y, 60.0)
		})
	}
}

func TestMovePlayerFacesLeft(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)
	d.run(40, false)

	d.press(cfg.ActionMoveLeft)
	d.tick(false)

	player := MustPlayer(d.w)
	assert.Equal(t, gameplay.FacingLeft, components.Player.Get(player).Facing)
	assert.True(t, components.Animation.Get(player).FlipX)
	assert.Equal(t, cfg.Swim, components.State.Get(player).CurrentState)
}

func TestMustPlayerPanicsOnDuplicate(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)
	level, _ := Level(d.w)
	factory.CreatePlayer(d.w, level.Physics, 100, 100)

	assert.Panics(t, func() { MustPlayer(d.w) })
}

func TestMustSessionPanicsWithoutSession(t *testing.T) {
	assert.Panics(t, func() { MustSession(donburi.NewWorld()) })
	assert.False(t, Terminal(donburi.NewWorld()))
	assert.Nil(t, Input(donburi.NewWorld()))
}

func TestClassifier(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)
	classify := Classifier(d.w)

	assert.Equal(t, gameplay.KindEnemy, classify(first(t, d.w, tags.Enemy).Entity()))
	assert.Equal(t, gameplay.KindPickup, classify(first(t, d.w, tags.Pickup).Entity()))
	assert.Equal(t, gameplay.KindGoal, classify(first(t, d.w, tags.Goal).Entity()))
	assert.Equal(t, gameplay.KindOther, classify(MustPlayer(d.w).Entity()))
}

func TestCameraTargetClamps(t *testing.T) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	got := CameraTarget(dmath.Vec2{X: 0, Y: 0}, 640, 240)
	assert.Equal(t, dmath.Vec2{X: w / 2, Y: h / 2}, got)

	got = CameraTarget(dmath.Vec2{X: 1000, Y: 1000}, 640, 240)
	assert.Equal(t, dmath.Vec2{X: 640 - w/2, Y: 240 - h/2}, got)

	got = CameraTarget(dmath.Vec2{X: 300, Y: 200}, 640, 480)
	assert.Equal(t, dmath.Vec2{X: 300, Y: 200}, got)
}

func TestSnapCameraAfterLoad(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)
	level, _ := Level(d.w)
	cam, ok := components.Camera.First(d.w)
	require.True(t, ok)

	want := CameraTarget(components.Object.Get(MustPlayer(d.w)).Position, level.Level.PixelWidth(), level.Level.PixelHeight())
	assert.Equal(t, want, components.Camera.Get(cam).Position)
}

func TestBubblesSpawn(t *testing.T) {
	d := newDive(t, advantage.PlayerDoubleHp)

	most := 0
	for i := 0; i < cfg.C.TPS*8; i++ {
		d.tick(false)
		most = max(most, count(d.w, tags.Bubble))
	}
	assert.Positive(t, most)
}

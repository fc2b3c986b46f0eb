package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/physics"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PhysicsConfig builds the physics world settings from the current config.
func PhysicsConfig() physics.Config {
	// every fish type shares one body size
	enemy := cfg.Enemy.Types[leveldata.Anglerfish.String()]
	return physics.Config{
		Gravity:          cfg.Physics.Gravity,
		Iterations:       cfg.Physics.Iterations,
		PlayerWidth:      cfg.Player.CollisionWidth,
		PlayerHeight:     cfg.Player.CollisionHeight,
		PlayerElasticity: cfg.Player.Elasticity,
		PlayerFriction:   cfg.Player.BodyFriction,
		EnemyWidth:       enemy.CollisionWidth,
		EnemyHeight:      enemy.CollisionHeight,
		PickupRadius:     cfg.Pickup.Radius,
	}
}

// LoadLevel creates the level container, a fresh physics world and every
// entity lvl requests. The level must hold exactly one player_start.
func LoadLevel(w donburi.World, lvl *leveldata.Level, r *rand.Rand) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	pw := physics.NewWorld(lvl.Grid, level.Entity(), PhysicsConfig())
	tiles, view := CreateTileSpace(lvl, float64(cfg.C.Width), float64(cfg.C.Height))
	components.Level.Set(level, &components.LevelData{
		Level:   lvl,
		Physics: pw,
		Tiles:   tiles,
		View:    view,
	})

	players := 0
	for _, s := range lvl.Spawns {
		switch s.Kind {
		case leveldata.SpawnPlayerStart:
			players++
			if players > 1 {
				panic(fmt.Sprintf("level %d: more than one player_start", lvl.Index))
			}
			CreatePlayer(w, pw, s.X, s.Y)
		case leveldata.SpawnEnemy:
			CreateEnemy(w, pw, s.Enemy, s.X, s.Y, s.PatrolRange)
		case leveldata.SpawnPickup:
			CreatePickup(w, pw, s.X, s.Y)
		case leveldata.SpawnGoal:
			CreateGoal(w, pw, s.X, s.Y, s.W, s.H)
		case leveldata.SpawnEffectGenerator:
			CreateBubbleGenerator(w, r, s.X, s.Y)
		}
	}
	if players == 0 {
		panic(fmt.Sprintf("level %d: %v", lvl.Index, leveldata.ErrNoPlayerStart))
	}

	return level
}

var levelScoped = donburi.NewQuery(filter.Or(
	filter.Contains(tags.Level),
	filter.Contains(tags.Player),
	filter.Contains(tags.Enemy),
	filter.Contains(tags.Pickup),
	filter.Contains(tags.Goal),
	filter.Contains(tags.BubbleGenerator),
	filter.Contains(tags.Bubble),
))

// TeardownLevel removes every level-scoped entity and drops the physics
// world with the level container. It returns how many entities went away.
func TeardownLevel(w donburi.World) int {
	var doomed []donburi.Entity
	levelScoped.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		w.Remove(e)
	}
	return len(doomed)
}

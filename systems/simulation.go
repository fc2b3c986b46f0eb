package systems

import (
	"math/rand/v2"

	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/systems/sim"
	"github.com/yohamta/donburi/ecs"
)

// Gameplay tick systems. Each one delegates to the headless sim package
// and is wrapped in WithGameplayChecks by the scene.

func UpdatePlayer(e *ecs.ECS) {
	sim.MovePlayer(e.World)
}

func UpdateEnemies(e *ecs.ECS) {
	sim.PatrolEnemies(e.World)
}

func UpdatePhysics(e *ecs.ECS) {
	sim.Step(e.World)
}

func UpdateObjects(e *ecs.ECS) {
	sim.SyncObjects(e.World)
}

// UpdateCollisions consults the change-map flag when a goal is reached.
func UpdateCollisions(e *ecs.ECS) {
	sim.Collide(e.World, cfg.Debug.ChangeMap)
}

func UpdateHits(e *ecs.ECS) {
	sim.Bite(e.World)
}

// NewUpdateLevelChange returns the system that performs a queued level change.
func NewUpdateLevelChange(set *leveldata.Set, r *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		sim.ChangeLevel(e.World, set, r)
	}
}

// NewUpdateEffects returns the system driving bubbles, the bite flash and
// the star spin. r seeds bubble lifetimes and frames.
func NewUpdateEffects(r *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		sim.UpdateEffects(e.World, r, sim.TickDuration())
	}
}

// UpdateCamera runs in terminal states too so the last frame stays framed.
func UpdateCamera(e *ecs.ECS) {
	sim.FollowCamera(e.World)
}

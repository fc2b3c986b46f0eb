package factory

import (
	"fmt"

	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/physics"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a fish patrolling around its spawn point. A zero
// patrolRange uses the configured default half-width.
func CreateEnemy(w donburi.World, pw *physics.World, kind leveldata.EnemyKind, x, y, patrolRange float64) *donburi.Entry {
	enemyType, ok := cfg.Enemy.Types[kind.String()]
	if !ok {
		panic(fmt.Sprintf("No enemy type configured for %s", kind))
	}
	if patrolRange <= 0 {
		patrolRange = cfg.Gameplay.DefaultPatrolDistance
	}

	enemy := archetypes.Enemy.Spawn(w)
	pos := math.Vec2{X: x, Y: y}

	body := pw.AddEnemy(enemy.Entity(), pos)
	components.Physics.SetValue(enemy, components.PhysicsData{Body: body})
	components.Object.SetValue(enemy, components.ObjectData{
		Position: pos,
		Size:     math.Vec2{X: enemyType.CollisionWidth, Y: enemyType.CollisionHeight},
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:     kind,
		TypeName: enemyType.Name,
		Patrol:   gameplay.NewPatrol(x, patrolRange),
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Patrol,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Set(enemy, GenerateAnimations(enemyType.SpriteSheetKey, cfg.Patrol))

	return enemy
}

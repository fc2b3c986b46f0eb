package sim

import (
	"math"

	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/gamemath"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/yohamta/donburi"
)

// moveEpsilon is the horizontal speed below which the crab counts as still.
const moveEpsilon = 1.0

// MovePlayer applies this tick's input to the crab's body and picks its
// animation.
func MovePlayer(w donburi.World) {
	level, ok := Level(w)
	if !ok {
		return
	}
	session := MustSession(w)
	input := Input(w)
	entry := MustPlayer(w)

	player := components.Player.Get(entry)
	player.Grounded = level.Physics.Grounded(entry.Entity())

	steer(entry, player, input, session.Session)
	updatePlayerAnimation(entry, player)
}

func steer(entry *donburi.Entry, player *components.PlayerData, input *components.InputData, s *gameplay.Session) {
	body := components.Physics.Get(entry).Body
	v := body.Velocity()
	vx, vy := v.X, v.Y

	switch {
	case input.Pressed(cfg.ActionMoveLeft):
		vx = -cfg.Player.MoveSpeed
		player.Facing = gameplay.FacingLeft
	case input.Pressed(cfg.ActionMoveRight):
		vx = cfg.Player.MoveSpeed
		player.Facing = gameplay.FacingRight
	default:
		vx = gamemath.ApplyFriction(vx, cfg.Player.Friction)
	}

	if input.JustPressed(cfg.ActionJump) && s.CanJump() {
		vy = cfg.Player.JumpSpeed
		s.Jumps++
	}
	if input.Pressed(cfg.ActionFastFall) && vy > cfg.Player.FastFallSpeed {
		vy = cfg.Player.FastFallSpeed
	}
	vy = math.Max(vy, -cfg.Physics.MaxFallSpeed)

	body.SetVelocity(vx, vy)
}

// updatePlayerAnimation plays the walk cycle only while grounded and moving.
func updatePlayerAnimation(entry *donburi.Entry, player *components.PlayerData) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	v := components.Physics.Get(entry).Body.Velocity()

	switch {
	case !player.Grounded:
		state.Set(cfg.Jump)
	case math.Abs(v.X) > moveEpsilon:
		state.Set(cfg.Swim)
	default:
		state.Set(cfg.Idle)
	}
	state.StateTimer++

	anim.FlipX = player.Facing == gameplay.FacingLeft
	anim.SetAnimation(state.CurrentState)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
}

// PatrolEnemies sets every fish's velocity for the coming step.
func PatrolEnemies(w donburi.World) {
	session := MustSession(w)
	playerPos := components.Object.Get(MustPlayer(w)).Position
	speed := session.EnemySpeed()

	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)
		body := components.Physics.Get(entry).Body

		vx := gameplay.UpdatePatrol(&enemy.Patrol, obj.Position, playerPos, enemy.Touching, speed, session.Rules)
		body.SetVelocity(vx, 0)

		updateEnemyAnimation(entry, enemy)
	})
}

// updateEnemyAnimation swaps between the patrol and bite rows. Fish sheets
// face left.
func updateEnemyAnimation(entry *donburi.Entry, enemy *components.EnemyData) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	if enemy.Patrol.Anim == gameplay.AnimBite {
		state.Set(cfg.Bite)
	} else {
		state.Set(cfg.Patrol)
	}
	state.StateTimer++

	anim.FlipX = enemy.Patrol.Facing == gameplay.FacingRight
	anim.SetAnimation(state.CurrentState)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
}

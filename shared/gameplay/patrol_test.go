package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPatrolBoundBeatsBite(t *testing.T) {
	r := DefaultRules()
	p := Patrol{Facing: FacingRight, Left: 100, Right: 200}

	// the player is just right of the bound and touching
	vx := UpdatePatrol(&p, dmath.Vec2{X: 200, Y: 50}, dmath.Vec2{X: 220, Y: 50}, true, 100, r)

	assert.Equal(t, 100.0, vx, "velocity follows the facing held at the start of the tick")
	assert.Equal(t, FacingLeft, p.Facing)
	assert.Equal(t, AnimBite, p.Anim)
}

func TestPatrolLeftBound(t *testing.T) {
	p := Patrol{Facing: FacingLeft, Left: 100, Right: 200}
	vx := UpdatePatrol(&p, dmath.Vec2{X: 99}, dmath.Vec2{X: 1000}, false, 170, DefaultRules())
	assert.Equal(t, -170.0, vx)
	assert.Equal(t, FacingRight, p.Facing)
}

func TestPatrolProximity(t *testing.T) {
	r := DefaultRules()
	enemy := dmath.Vec2{X: 150, Y: 100}

	tests := []struct {
		name      string
		player    dmath.Vec2
		proximity bool
		facing    Facing
		anim      EnemyAnim
	}{
		{"bite to the left", dmath.Vec2{X: 110, Y: 100}, true, FacingLeft, AnimBite},
		{"close but not touching", dmath.Vec2{X: 110, Y: 100}, false, FacingLeft, AnimPatrol},
		{"patrol toward player", dmath.Vec2{X: 215, Y: 140}, true, FacingRight, AnimPatrol},
		{"too far sideways", dmath.Vec2{X: 260, Y: 100}, true, FacingLeft, AnimPatrol},
		{"too far vertically", dmath.Vec2{X: 190, Y: 171}, true, FacingLeft, AnimPatrol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Patrol{Facing: FacingLeft, Left: 0, Right: 400}
			UpdatePatrol(&p, enemy, tt.player, tt.proximity, r.PatrolSpeed, r)
			assert.Equal(t, tt.facing, p.Facing)
			assert.Equal(t, tt.anim, p.Anim)
		})
	}
}

func TestNewPatrolCentersOnSpawn(t *testing.T) {
	p := NewPatrol(80, 48)
	assert.Equal(t, 32.0, p.Left)
	assert.Equal(t, 128.0, p.Right)
	assert.Equal(t, FacingLeft, p.Facing)
}

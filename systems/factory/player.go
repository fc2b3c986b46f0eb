package factory

import (
	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/physics"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, pw *physics.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	pos := math.Vec2{X: x, Y: y}

	body := pw.AddPlayer(player.Entity(), pos)
	components.Physics.SetValue(player, components.PhysicsData{Body: body})
	components.Object.SetValue(player, components.ObjectData{
		Position: pos,
		Size:     math.Vec2{X: cfg.Player.CollisionWidth, Y: cfg.Player.CollisionHeight},
	})
	components.Player.SetValue(player, components.PlayerData{
		Facing: gameplay.FacingRight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Set(player, GenerateAnimations("crab", cfg.Idle))

	// Flash stays attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	return player
}

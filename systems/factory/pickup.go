package factory

import (
	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePickup spawns a spinning star with a sensor circle.
func CreatePickup(w donburi.World, pw *physics.World, x, y float64) *donburi.Entry {
	star := archetypes.Pickup.Spawn(w)
	pos := math.Vec2{X: x, Y: y}

	pw.AddPickup(star.Entity(), pos)
	d := cfg.Pickup.Radius * 2
	components.Object.SetValue(star, components.ObjectData{Position: pos, Size: math.Vec2{X: d, Y: d}})
	components.Animation.Set(star, GenerateAnimations("star", cfg.Spin))

	return star
}

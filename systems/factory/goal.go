package factory

import (
	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateGoal(w donburi.World, pw *physics.World, x, y, width, height float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(w)
	pos := math.Vec2{X: x, Y: y}
	size := math.Vec2{X: width, Y: height}

	pw.AddGoal(goal.Entity(), pos, size)
	components.Object.SetValue(goal, components.ObjectData{Position: pos, Size: size})
	components.Goal.SetValue(goal, components.GoalData{})

	return goal
}

package components

import "github.com/yohamta/donburi"

type GoalData struct {
	Reached bool
}

var Goal = donburi.NewComponentType[GoalData]()

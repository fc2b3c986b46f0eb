package components

import (
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing   gameplay.Facing
	Grounded bool // refreshed from the body's arbiters every tick
}

var Player = donburi.NewComponentType[PlayerData]()

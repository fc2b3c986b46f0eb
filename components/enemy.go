package components

import (
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind     leveldata.EnemyKind
	TypeName string // "Anglerfish", "Sawfish"
	Patrol   gameplay.Patrol
	Touching bool // overlapping the player since the last Started contact
}

var Enemy = donburi.NewComponentType[EnemyData]()

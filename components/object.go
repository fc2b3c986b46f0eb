package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's world-space center and extent (Y up).
type ObjectData struct {
	Position math.Vec2
	Size     math.Vec2
}

var Object = donburi.NewComponentType[ObjectData]()

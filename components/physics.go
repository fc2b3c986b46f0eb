package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// PhysicsData links an entity to its cp body. Pickups and goals live on the
// space's static body and carry no PhysicsData.
type PhysicsData struct {
	Body *cp.Body
}

var Physics = donburi.NewComponentType[PhysicsData]()

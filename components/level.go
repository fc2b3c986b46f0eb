package components

import (
	"github.com/automoto/ferrisdive/physics"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is the level container. Destroying it, together with every
// level-scoped entity, is what a level teardown means.
type LevelData struct {
	Level   *leveldata.Level
	Physics *physics.World
	Tiles   *resolv.Space  // tile sprite index for view culling, Y down
	View    *resolv.Object // moved to the camera rect before each query
}

var Level = donburi.NewComponentType[LevelData]()

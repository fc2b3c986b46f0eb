package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Enemy           = donburi.NewTag().SetName("Enemy")
	Pickup          = donburi.NewTag().SetName("Pickup")
	Goal            = donburi.NewTag().SetName("Goal")
	BubbleGenerator = donburi.NewTag().SetName("BubbleGenerator")
	Bubble          = donburi.NewTag().SetName("Bubble")
	Level           = donburi.NewTag().SetName("Level")
)

// ResolvTile tags tile sprites in the culling index
const ResolvTile = "tile"

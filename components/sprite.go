package components

import "github.com/yohamta/donburi"

// SpriteData draws one fixed frame of a sheet.
type SpriteData struct {
	SheetKey string
	Frame    int
}

var Sprite = donburi.NewComponentType[SpriteData]()

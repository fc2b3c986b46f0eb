package factory

import (
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/tags"
	"github.com/solarlune/resolv"
)

// CreateTileSpace indexes the non-water tile sprites of lvl in a resolv space so the
// renderer only draws what the camera can see. The space is Y down; each
// object's Data is a *leveldata.TileSprite. The returned view object is
// already part of the space.
func CreateTileSpace(lvl *leveldata.Level, viewWidth, viewHeight float64) (*resolv.Space, *resolv.Object) {
	const t = float64(leveldata.TileSize)
	space := resolv.NewSpace(lvl.Width*leveldata.TileSize, lvl.Height*leveldata.TileSize, leveldata.TileSize, leveldata.TileSize)
	mapH := lvl.PixelHeight()

	for i := range lvl.Tiles {
		s := &lvl.Tiles[i]
		obj := resolv.NewObject(s.X-t/2, mapH-s.Y-t/2, t, t, tags.ResolvTile)
		obj.Data = s
		space.Add(obj)
	}

	view := resolv.NewObject(0, 0, viewWidth, viewHeight)
	space.Add(view)
	return space, view
}

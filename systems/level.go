package systems

import (
	"sort"

	"github.com/automoto/ferrisdive/assets"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var visibleTiles []*leveldata.TileSprite

// DrawLevel clears to the water color and draws the tiles under the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.ClearColor)

	level, ok := getLevel(e.World)
	if !ok {
		return
	}
	origin, ok := cameraOrigin(e)
	if !ok {
		return
	}

	view := level.View
	view.X = origin.X
	view.Y = level.Level.PixelHeight() - origin.Y
	view.Update()

	collision := view.Check(0, 0, tags.ResolvTile)
	if collision == nil {
		return
	}

	visibleTiles = visibleTiles[:0]
	for _, obj := range collision.ObjectsByTags(tags.ResolvTile) {
		visibleTiles = append(visibleTiles, obj.Data.(*leveldata.TileSprite))
	}
	sort.Slice(visibleTiles, func(i, j int) bool {
		a, b := visibleTiles[i], visibleTiles[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	const half = leveldata.TileSize / 2
	for _, s := range visibleTiles {
		img := assets.GetTile(s)
		if img == nil {
			continue
		}
		x, y := toScreen(origin, dmath.Vec2{X: s.X - half, Y: s.Y + half})
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	}
}

// DrawWater lays the pre-rendered water layer over everything drawn so far.
func DrawWater(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := getLevel(e.World)
	if !ok {
		return
	}
	origin, ok := cameraOrigin(e)
	if !ok {
		return
	}
	img := assets.WaterLayer(level.Level)
	if img == nil {
		return
	}

	x, y := toScreen(origin, dmath.Vec2{X: 0, Y: level.Level.PixelHeight()})
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleAlpha(cfg.Level.WaterAlpha)
	screen.DrawImage(img, drawOp)
}

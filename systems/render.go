package systems

import (
	"github.com/automoto/ferrisdive/assets"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 32.0

// DrawAnimated renders entities with an Animation component at their
// current frame. Bodies are anchored bottom-center so the sprite's feet sit
// on the collision box; everything else is centered.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	origin, ok := cameraOrigin(e)
	if !ok {
		return
	}

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		anim := components.Animation.Get(entry)
		if offscreen(origin, o.Position) {
			return
		}

		img := assets.GetFrame(anim.SheetKey, anim.Frame())
		w, h := float64(anim.FrameWidth), float64(anim.FrameHeight)

		x, y := toScreen(origin, o.Position)
		geo := ebiten.GeoM{}
		if anim.FlipX {
			geo.Scale(-1, 1)
			geo.Translate(w, 0)
		}
		if entry.HasComponent(components.Physics) {
			geo.Translate(x-w/2, y+o.Size.Y/2-h)
		} else {
			geo.Translate(x-w/2, y-h/2)
		}

		if entry.HasComponent(components.Flash) {
			if flash := components.Flash.Get(entry); flash.Duration > 0 && assets.TintShader != nil {
				drawTinted(screen, img, geo, flash)
				return
			}
		}

		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		screen.DrawImage(img, drawOp)
	})
}

func drawTinted(screen, img *ebiten.Image, geo ebiten.GeoM, flash *components.FlashData) {
	b := img.Bounds()
	shaderOp.GeoM = geo
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"Tint": []float32{flash.R, flash.G, flash.B, 0.8},
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}

// DrawSprites renders single-frame entities such as bubbles.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	origin, ok := cameraOrigin(e)
	if !ok {
		return
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if offscreen(origin, o.Position) {
			return
		}
		sprite := components.Sprite.Get(entry)
		img := assets.GetFrame(sprite.SheetKey, sprite.Frame)

		x, y := toScreen(origin, o.Position)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x-o.Size.X/2, y-o.Size.Y/2)
		screen.DrawImage(img, drawOp)
	})
}

func offscreen(origin, p dmath.Vec2) bool {
	x, y := toScreen(origin, p)
	return x < -cullPadding || x > float64(cfg.C.Width)+cullPadding ||
		y < -cullPadding || y > float64(cfg.C.Height)+cullPadding
}

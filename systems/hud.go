package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ferrisdive/assets/levels"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/fonts"
	"github.com/automoto/ferrisdive/systems/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	hudFace   text.Face
	debugFace text.Face
	textOp    = &text.DrawOptions{}
)

func faces() (hud, debug text.Face) {
	if hudFace == nil {
		hudFace = text.NewGoXFace(fonts.HUD.Get())
		debugFace = text.NewGoXFace(fonts.Debug.Get())
	}
	return hudFace, debugFace
}

// UpdateHUD steps the controls hint fade.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := getSessionEntry(e)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	if hud.Hint == nil {
		return
	}
	alpha, _, done := hud.Hint.Update(float32(sim.TickDuration().Seconds()))
	hud.HintAlpha = alpha
	if done {
		hud.HintAlpha = 0
		hud.Hint = nil
	}
}

// DrawHUD shows health, the advantage and the level in the top-left
// corner, and the fading controls hint along the bottom.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getSessionEntry(e)
	if !ok {
		return
	}
	snap := components.Session.Get(entry).Snapshot()
	hud := components.HUD.Get(entry)
	face, _ := faces()

	m, lh := cfg.HUD.Margin, cfg.HUD.LineHeight

	hpColor := cfg.HUD.HealthColor
	if snap.Health < cfg.HUD.LowHealth {
		hpColor = cfg.HUD.LowHealthColor
	}
	drawText(screen, face, fmt.Sprintf("hp %d", snap.Health), m, m, hpColor, 1)

	perkColor := cfg.HUD.BadPerkColor
	if snap.Advantage.Beneficial() {
		perkColor = cfg.HUD.GoodPerkColor
	}
	drawText(screen, face, snap.Advantage.String(), m, m+lh, perkColor, 1)
	drawText(screen, face, levels.Name(snap.LevelIndex), m, m+2*lh, cfg.White, 1)

	if hud.HintAlpha > 0 {
		drawText(screen, face, cfg.HUD.HintText, m, float64(cfg.C.Height)-m-lh, cfg.White, hud.HintAlpha)
	}
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color, alpha float32) {
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(c)
	textOp.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, textOp)
}

package systems

import (
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/systems/sim"
	"github.com/automoto/ferrisdive/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateOverlay returns the system that raises the terminal card the
// first tick the session is Died or Won, then fades it in.
func NewUpdateOverlay(ov *ui.Overlay) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := getSessionEntry(e)
		if !ok {
			return
		}
		session := components.Session.Get(entry)
		overlay := components.Overlay.Get(entry)

		if session.State.Terminal() && overlay.Shown == gameplay.InGame {
			overlay.Shown = session.State
			overlay.Fade = gween.New(0, 1, float32(cfg.Overlay.FadeDuration.Seconds()), ease.OutCubic)
			overlay.Alpha = 0
			ov.Show(cardFor(session.State))
		}

		if overlay.Fade != nil {
			alpha, done := overlay.Fade.Update(float32(sim.TickDuration().Seconds()))
			overlay.Alpha = alpha
			if done {
				overlay.Fade = nil
			}
		}
		ov.Update()
	}
}

// NewDrawOverlay returns the renderer for the terminal card.
func NewDrawOverlay(ov *ui.Overlay) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !ov.Visible() {
			return
		}
		entry, ok := getSessionEntry(e)
		if !ok {
			return
		}
		ov.Draw(screen, components.Overlay.Get(entry).Alpha)
	}
}

func cardFor(state gameplay.GameState) ui.Card {
	if state == gameplay.Won {
		return ui.Card{
			Title:      cfg.Overlay.WonText,
			TitleColor: cfg.Overlay.WonColor,
			Background: cfg.Overlay.WonBackground,
			Hint:       cfg.Overlay.HintText,
			HintColor:  cfg.Black,
		}
	}
	return ui.Card{
		Title:      cfg.Overlay.DiedText,
		TitleColor: cfg.Overlay.DiedColor,
		Background: cfg.Overlay.DiedBackground,
		Hint:       cfg.Overlay.HintText,
		HintColor:  cfg.Overlay.HintColor,
	}
}

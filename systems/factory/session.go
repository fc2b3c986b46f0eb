package factory

import (
	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the singleton carrying the session, input state,
// HUD hint tween and terminal overlay state.
func CreateSession(w donburi.World, s *gameplay.Session) *donburi.Entry {
	entry := archetypes.Session.Spawn(w)
	components.Session.SetValue(entry, components.SessionData{Session: s})

	hint := gween.NewSequence()
	hint.Add(
		gween.New(1, 1, float32(cfg.HUD.HintHold.Seconds()), ease.Linear),
		gween.New(1, 0, float32(cfg.HUD.HintFade.Seconds()), ease.OutQuad),
	)
	components.HUD.SetValue(entry, components.HUDData{Hint: hint, HintAlpha: 1})
	components.Overlay.SetValue(entry, components.OverlayData{Shown: gameplay.InGame})

	return entry
}

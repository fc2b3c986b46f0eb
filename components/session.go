package components

import (
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding the playthrough context.
type SessionData struct {
	*gameplay.Session
	Pending *gameplay.Outcome // goal outcome waiting for the level change system
}

var Session = donburi.NewComponentType[SessionData]()

// HUDData animates the controls hint.
type HUDData struct {
	Hint      *gween.Sequence
	HintAlpha float32
}

var HUD = donburi.NewComponentType[HUDData]()

// OverlayData is the terminal overlay. Shown is set once, on the tick
// the session entered Died or Won.
type OverlayData struct {
	Shown gameplay.GameState
	Fade  *gween.Tween
	Alpha float32
}

var Overlay = donburi.NewComponentType[OverlayData]()

package systems

import (
	"fmt"
	"math/rand/v2"

	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/advantage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewUpdateDebug returns the system for the debug keys: F1 toggles the
// collider overlay, F2 rerolls the advantage when debug mode is on.
func NewUpdateDebug(r *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		input := GetInput(e)
		if input == nil {
			return
		}
		if input.JustPressed(cfg.ActionDebugColliders) {
			cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
		}
		if cfg.Debug.Enabled && input.JustPressed(cfg.ActionDebugReroll) {
			session := mustSession(e)
			session.Advantage = advantage.Choose(r)
			log.Info().Stringer("advantage", session.Advantage).Msg("advantage rerolled")
		}
	}
}

// DrawDebug outlines every physics shape and prints the session state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	level, ok := getLevel(e.World)
	if !ok {
		return
	}
	origin, ok := cameraOrigin(e)
	if !ok {
		return
	}

	level.Physics.Space().EachShape(func(shape *cp.Shape) {
		bb := shape.BB()
		x, y := toScreen(origin, dmath.Vec2{X: bb.L, Y: bb.T})
		c := cfg.HUD.DebugShapeColor
		if shape.Sensor() {
			c = cfg.LightBlue
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, c, false)
	})

	session := mustSession(e)
	_, face := faces()
	msg := fmt.Sprintf("tps %.0f  jumps %d/%d  hit %v  colliders %d",
		ebiten.ActualTPS(), session.Jumps, session.JumpLimit(), session.Hit.Active, level.Physics.Colliders())
	drawText(screen, face, msg, cfg.HUD.Margin, float64(cfg.C.Height)-2*cfg.HUD.LineHeight-cfg.HUD.Margin, cfg.HUD.DebugTextColor, 1)
}

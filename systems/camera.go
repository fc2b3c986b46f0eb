package systems

import (
	"math"

	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// cameraOrigin is the world position drawn at the top-left pixel, rounded
// so tiles never land between pixels.
func cameraOrigin(e *ecs.ECS) (dmath.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return dmath.Vec2{}, false
	}
	c := components.Camera.Get(cameraEntry).Position
	return dmath.Vec2{
		X: math.Round(c.X - float64(config.C.Width)/2),
		Y: math.Round(c.Y + float64(config.C.Height)/2),
	}, true
}

// toScreen maps a Y-up world point to screen pixels.
func toScreen(origin, p dmath.Vec2) (float64, float64) {
	return p.X - origin.X, origin.Y - p.Y
}

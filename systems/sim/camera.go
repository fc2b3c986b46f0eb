package sim

import (
	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// FollowCamera eases the camera toward the player, keeping the view inside
// the level.
func FollowCamera(w donburi.World) {
	camera, target, ok := cameraAndTarget(w)
	if !ok {
		return
	}
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on the player at once, used after a level
// load so the view does not sweep across the new map.
func SnapCamera(w donburi.World) {
	camera, target, ok := cameraAndTarget(w)
	if !ok {
		return
	}
	camera.Position = target
}

func cameraAndTarget(w donburi.World) (*components.CameraData, dmath.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return nil, dmath.Vec2{}, false
	}
	level, ok := Level(w)
	if !ok {
		return nil, dmath.Vec2{}, false
	}
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return nil, dmath.Vec2{}, false
	}
	target := CameraTarget(components.Object.Get(playerEntry).Position, level.Level.PixelWidth(), level.Level.PixelHeight())
	return components.Camera.Get(cameraEntry), target, true
}

// CameraTarget is the camera center that frames player without showing
// anything outside the level.
func CameraTarget(player dmath.Vec2, levelWidth, levelHeight float64) dmath.Vec2 {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2
	return dmath.Vec2{
		X: gamemath.Clamp(player.X, halfW, levelWidth-halfW),
		Y: gamemath.Clamp(player.Y, halfH, levelHeight-halfH),
	}
}

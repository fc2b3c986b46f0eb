package factory

import (
	"github.com/automoto/ferrisdive/archetypes"
	"github.com/automoto/ferrisdive/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, at math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{Position: at})
	return camera
}

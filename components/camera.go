package components

import (
	"github.com/automoto/platformer/shared/camerafit"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Frame camerafit.Frame
	// Valid is false until a tracked entity has been seen.
	Valid bool
}

var Camera = donburi.NewComponentType[CameraData]()

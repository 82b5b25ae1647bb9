package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is an entity's world position (box center) and size.
type TransformData struct {
	Position   math.Vec2
	HalfWidth  float64
	HalfHeight float64
}

var Transform = donburi.NewComponentType[TransformData]()

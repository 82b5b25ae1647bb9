package components

import (
	"github.com/yohamta/donburi"
)

// IntentData is the movement request for this frame. The host writes it from
// whatever input device it reads; movement only consumes it.
type IntentData struct {
	MoveX float64 // -1..1
	Jump  bool
}

var Intent = donburi.NewComponentType[IntentData]()

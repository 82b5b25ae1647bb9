package components

import (
	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// WallColliderData is a merged static wall box owned by a level.
type WallColliderData struct {
	Level leveldata.LevelID
	Box   collider.Box // world space
}

var WallCollider = donburi.NewComponentType[WallColliderData]()

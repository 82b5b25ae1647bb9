package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateWall spawns one merged wall collider owned by level.
func CreateWall(w donburi.World, level leveldata.LevelID, box collider.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	components.WallCollider.SetValue(wall, components.WallColliderData{
		Level: level,
		Box:   box,
	})
	return wall
}

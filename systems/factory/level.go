package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entity and one pending wall-cell entity per
// wall tile. UpdateWallColliders meshes them on the next frame.
func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{Level: level})

	for _, cell := range level.WallCells() {
		wall := archetypes.WallCell.Spawn(w)
		components.WallCell.SetValue(wall, components.WallCellData{
			Level:  cell.Level,
			Coords: cell.Coords,
		})
	}
	return entry
}

// FindLevel returns the level entity with the given id.
func FindLevel(w donburi.World, id leveldata.LevelID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Level.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Level.Get(e).Level.ID == id {
			found = e
		}
	})
	return found, found != nil
}

package components

import (
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()

// WallCellData is one wall tile observed in a level. Cells are meshed into
// colliders once per level load.
type WallCellData struct {
	Level  leveldata.LevelID
	Coords leveldata.GridCoords
}

var WallCell = donburi.NewComponentType[WallCellData]()

// LevelSelectionData names the level the tracked entity is currently inside.
type LevelSelectionData struct {
	Current leveldata.LevelID
}

var LevelSelection = donburi.NewComponentType[LevelSelectionData]()

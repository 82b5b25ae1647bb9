package leveldata

import "sort"

// Cells is a set of occupied wall cells within one level.
type Cells map[GridCoords]struct{}

// Add marks c as a wall cell.
func (c Cells) Add(coords GridCoords) {
	c[coords] = struct{}{}
}

// Contains reports whether coords is a wall cell. A nil set contains nothing.
func (c Cells) Contains(coords GridCoords) bool {
	_, ok := c[coords]
	return ok
}

// Len returns the number of wall cells.
func (c Cells) Len() int {
	return len(c)
}

// WallCell is one observed wall tile and the level that owns it.
type WallCell struct {
	Coords GridCoords
	Level  LevelID
}

// WallSet maps each level to its wall cells. Levels partition the walls: a
// level's cells are only ever reached through its own key.
type WallSet struct {
	levels map[LevelID]Cells
}

// NewWallSet returns an empty wall set.
func NewWallSet() *WallSet {
	return &WallSet{levels: make(map[LevelID]Cells)}
}

// IndexWalls aggregates a stream of wall cells into per-level sets.
func IndexWalls(cells []WallCell) *WallSet {
	ws := NewWallSet()
	for _, c := range cells {
		ws.Add(c.Level, c.Coords)
	}
	return ws
}

// Add records coords as a wall of level.
func (ws *WallSet) Add(level LevelID, coords GridCoords) {
	set, ok := ws.levels[level]
	if !ok {
		set = make(Cells)
		ws.levels[level] = set
	}
	set.Add(coords)
}

// Level returns the wall cells of one level.
func (ws *WallSet) Level(level LevelID) (Cells, bool) {
	set, ok := ws.levels[level]
	return set, ok
}

// Remove drops a level's cells, e.g. when the level unloads.
func (ws *WallSet) Remove(level LevelID) {
	delete(ws.levels, level)
}

// Levels returns the ids of all levels with at least one wall, sorted.
func (ws *WallSet) Levels() []LevelID {
	ids := make([]LevelID, 0, len(ws.levels))
	for id := range ws.levels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the total number of wall cells over all levels.
func (ws *WallSet) Len() int {
	n := 0
	for _, set := range ws.levels {
		n += len(set)
	}
	return n
}

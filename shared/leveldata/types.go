// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// LevelID identifies one level. It is the map's "iid" property when present,
// otherwise the TMX file stem.
type LevelID string

// GridCoords is a level-local cell position. Rows grow along the level's own
// y axis, matching Tiled's row order.
type GridCoords struct {
	X, Y int
}

// Level holds everything the collision core needs from one imported map.
type Level struct {
	ID   LevelID
	Name string

	// Grid dimensions in cells.
	GridWidth  int
	GridHeight int

	// CellSize is the edge length of one grid cell in world units (pixels).
	CellSize float64

	// World placement of the level's anchor (top-left corner).
	OriginX float64
	OriginY float64

	Walls       Cells
	SpawnPoints []SpawnPoint
}

// PixelWidth returns the level width in world units.
func (l *Level) PixelWidth() float64 {
	return float64(l.GridWidth) * l.CellSize
}

// PixelHeight returns the level height in world units.
func (l *Level) PixelHeight() float64 {
	return float64(l.GridHeight) * l.CellSize
}

// Width implements the mesher's grid interface.
func (l *Level) Width() int { return l.GridWidth }

// Height implements the mesher's grid interface.
func (l *Level) Height() int { return l.GridHeight }

// IsWall reports whether (x, y) is a wall cell of this level.
func (l *Level) IsWall(x, y int) bool {
	return l.Walls.Contains(GridCoords{X: x, Y: y})
}

// SpawnPoint represents a player spawn location, level-relative.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

package wallmesh

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned for grids with a non-positive width or height.
var ErrInvalidGrid = errors.New("invalid grid size")

// Stats summarizes one meshing run.
type Stats struct {
	Cells  int
	Plates int
	Rects  int
}

// Mesh runs the full pipeline over g. name identifies the level in errors.
func Mesh(name string, g Grid) ([]Rect, error) {
	rects, _, err := MeshWithStats(name, g)
	return rects, err
}

// MeshWithStats is Mesh plus counts for reporting.
func MeshWithStats(name string, g Grid) ([]Rect, Stats, error) {
	if g == nil {
		return nil, Stats{}, fmt.Errorf("level %q: %w: no grid", name, ErrInvalidGrid)
	}
	if g.Width() <= 0 || g.Height() <= 0 {
		return nil, Stats{}, fmt.Errorf("level %q: %w: %dx%d", name, ErrInvalidGrid, g.Width(), g.Height())
	}

	stack := PlateStack(g)
	var stats Stats
	for _, row := range stack {
		stats.Plates += len(row)
		for _, p := range row {
			stats.Cells += p.Len()
		}
	}

	rects := MergePlates(stack)
	stats.Rects = len(rects)
	return rects, stats, nil
}

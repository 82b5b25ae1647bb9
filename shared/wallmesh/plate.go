// Package wallmesh merges a level's wall cells into a small set of
// axis-aligned rectangles suitable for static colliders.
//
// Spawning one collider per wall tile makes the physics step crawl, so walls
// are meshed in two passes instead: every row is collapsed into maximal
// horizontal runs ("plates"), then identical plates in consecutive rows are
// stacked into rectangles.
package wallmesh

// Grid is the occupancy view the mesher works on.
type Grid interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// Plate is a maximal run of wall cells on one row, inclusive on both ends.
type Plate struct {
	Left, Right int
}

// Len returns the number of cells the plate covers.
func (p Plate) Len() int {
	return p.Right - p.Left + 1
}

// RowPlates collapses row y into plates sorted by Left. Consecutive plates are
// always separated by at least one empty cell.
func RowPlates(width, y int, isWall func(x, y int) bool) []Plate {
	var plates []Plate
	start, open := 0, false

	// One extra column so a plate touching the right edge still gets closed.
	for x := 0; x <= width; x++ {
		wall := x < width && isWall(x, y)
		switch {
		case open && !wall:
			plates = append(plates, Plate{Left: start, Right: x - 1})
			open = false
		case !open && wall:
			start, open = x, true
		}
	}
	return plates
}

// PlateStack returns the plates of every row of g, from row 0 upwards.
func PlateStack(g Grid) [][]Plate {
	stack := make([][]Plate, g.Height())
	for y := range stack {
		stack[y] = RowPlates(g.Width(), y, g.IsWall)
	}
	return stack
}

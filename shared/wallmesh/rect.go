package wallmesh

// Rect is a solid block of wall cells, inclusive on all sides. Bottom is the
// lowest row index and Top the highest.
type Rect struct {
	Left, Right int
	Bottom, Top int
}

// Width returns the rectangle width in cells.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the rectangle height in cells.
func (r Rect) Height() int {
	return r.Top - r.Bottom + 1
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// MergePlates stacks identical plates from consecutive rows into rectangles.
//
// A plate only continues a rectangle when both ends match exactly; any change
// of span starts a new rectangle. This keeps the sweep linear at the cost of a
// few more colliders than an optimal cover.
func MergePlates(stack [][]Plate) []Rect {
	var rects []Rect
	building := make(map[Plate]Rect)
	var prev []Plate

	// The pass over len(stack) is an empty row that finishes rectangles
	// touching the top edge.
	for y := 0; y <= len(stack); y++ {
		var row []Plate
		if y < len(stack) {
			row = stack[y]
		}

		current := make(map[Plate]struct{}, len(row))
		for _, p := range row {
			current[p] = struct{}{}
		}

		for _, p := range prev {
			if _, ok := current[p]; ok {
				continue
			}
			// Removing the finished rect lets the same plate start a new one later.
			if r, ok := building[p]; ok {
				rects = append(rects, r)
				delete(building, p)
			}
		}

		for _, p := range row {
			if r, ok := building[p]; ok {
				r.Top = y
				building[p] = r
				continue
			}
			building[p] = Rect{Left: p.Left, Right: p.Right, Bottom: y, Top: y}
		}

		prev = row
	}

	return rects
}

// Package collider turns meshed wall rectangles into static box colliders and
// keeps them grouped by the level that owns them.
package collider

import "github.com/automoto/platformer/shared/wallmesh"

// Box is an axis-aligned box given by its center and half extents.
type Box struct {
	CenterX, CenterY      float64
	HalfWidth, HalfHeight float64
}

// FromRect converts a rectangle of grid cells into a level-relative box.
func FromRect(r wallmesh.Rect, cellSize float64) Box {
	return Box{
		CenterX:    float64(r.Left+r.Right+1) * cellSize / 2,
		CenterY:    float64(r.Bottom+r.Top+1) * cellSize / 2,
		HalfWidth:  float64(r.Right-r.Left+1) * cellSize / 2,
		HalfHeight: float64(r.Top-r.Bottom+1) * cellSize / 2,
	}
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.CenterX += dx
	b.CenterY += dy
	return b
}

// Min returns the minimum corner.
func (b Box) Min() (x, y float64) {
	return b.CenterX - b.HalfWidth, b.CenterY - b.HalfHeight
}

// Max returns the maximum corner.
func (b Box) Max() (x, y float64) {
	return b.CenterX + b.HalfWidth, b.CenterY + b.HalfHeight
}

// Size returns the full width and height.
func (b Box) Size() (w, h float64) {
	return b.HalfWidth * 2, b.HalfHeight * 2
}

// Overlaps reports whether two boxes share interior area.
func (b Box) Overlaps(o Box) bool {
	return b.CenterX-b.HalfWidth < o.CenterX+o.HalfWidth &&
		o.CenterX-o.HalfWidth < b.CenterX+b.HalfWidth &&
		b.CenterY-b.HalfHeight < o.CenterY+o.HalfHeight &&
		o.CenterY-o.HalfHeight < b.CenterY+b.HalfHeight
}

// Package camerafit sizes a fixed 16:9 camera to the current level and keeps
// it inside the level while following a tracked position.
package camerafit

import "math"

// AspectRatio is the viewport width divided by its height.
const AspectRatio = 16.0 / 9.0

// Level is the pixel size and world anchor of the level being viewed.
type Level struct {
	Width, Height    float64
	OriginX, OriginY float64
}

// Contains reports whether (x, y) lies strictly inside the level bounds.
func (l Level) Contains(x, y float64) bool {
	return x > l.OriginX && x < l.OriginX+l.Width &&
		y > l.OriginY && y < l.OriginY+l.Height
}

// Frame is the viewport for one evaluation. Offset is relative to the level
// anchor; X and Y are the viewport's world-space corner.
type Frame struct {
	Width, Height    float64
	OffsetX, OffsetY float64
	X, Y             float64
}

// Scale returns the factor that maps the frame onto a screen of the given
// width.
func (f Frame) Scale(screenWidth float64) float64 {
	if f.Width <= 0 {
		return 1
	}
	return screenWidth / f.Width
}

// Fit computes the viewport for level following (trackedX, trackedY). A level
// wider than the aspect ratio locks the viewport height to the level and
// scrolls horizontally; otherwise the width is locked and it scrolls
// vertically.
func Fit(level Level, trackedX, trackedY float64) Frame {
	var f Frame
	if level.Height > 0 && level.Width/level.Height > AspectRatio {
		f.Height = math.Round(level.Height/9) * 9
		f.Width = f.Height * AspectRatio
		f.OffsetX = clamp(trackedX-level.OriginX-f.Width/2, 0, level.Width-f.Width)
	} else {
		f.Width = math.Round(level.Width/16) * 16
		f.Height = f.Width / AspectRatio
		f.OffsetY = clamp(trackedY-level.OriginY-f.Height/2, 0, level.Height-f.Height)
	}
	f.X = f.OffsetX + level.OriginX
	f.Y = f.OffsetY + level.OriginY
	return f
}

// clamp limits v to [lo, max(lo, hi)]. Rounding the viewport size can make it
// slightly larger than the level, in which case the offset pins to lo.
func clamp(v, lo, hi float64) float64 {
	hi = math.Max(lo, hi)
	return math.Max(lo, math.Min(v, hi))
}

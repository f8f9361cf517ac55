package gamemath

import "math"

// ClampView keeps a viewport of length view inside a world of length world.
// A world smaller than the view pins the viewport to 0.
func ClampView(pos, view, world float64) float64 {
	limit := math.Max(0, world-view)
	return math.Max(0, math.Min(pos, limit))
}

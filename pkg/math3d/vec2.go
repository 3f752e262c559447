package math3d

import "math"

// Vec2 represents a 2D screen coordinate.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (a Vec2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) &&
		!math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

package math3d

import "math"

// Vec2 represents a 2D point in screen space.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Round returns the components rounded to the nearest integer.
func (v Vec2) Round() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

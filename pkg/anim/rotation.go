package anim

import "github.com/taigrr/asciicube/pkg/math3d"

// DefaultSpeed returns the per-tick rotation in degrees around X, Y and Z.
func DefaultSpeed() [3]float64 {
	return [3]float64{1.0, 1.5, 0.7}
}

// RotationState holds the cube orientation as three angles in degrees, each
// kept in [0, 360), and how far each one moves per tick.
type RotationState struct {
	Angles [3]float64 // Degrees around X, Y, Z
	Speed  [3]float64 // Degrees per tick
}

// NewRotationState creates a rotation starting at initial (wrapped into
// range) and moving by speed every tick.
func NewRotationState(initial, speed [3]float64) RotationState {
	r := RotationState{Speed: speed}
	for i, a := range initial {
		r.Angles[i] = math3d.WrapDegrees(a)
	}
	return r
}

// Advance moves every angle by its speed scaled by factor and wraps the
// result into [0, 360).
func (r *RotationState) Advance(factor float64) {
	for i := range r.Angles {
		r.Angles[i] = math3d.WrapDegrees(r.Angles[i] + r.Speed[i]*factor)
	}
}

// AdvanceN advances n ticks, eased by spin when it is not nil.
func (r *RotationState) AdvanceN(n int, spin *SpinUp) {
	for range n {
		factor := 1.0
		if spin != nil {
			factor = spin.Update()
		}
		r.Advance(factor)
	}
}

// Radians returns the angles in radians.
func (r RotationState) Radians() (ax, ay, az float64) {
	return math3d.Radians(r.Angles[0]), math3d.Radians(r.Angles[1]), math3d.Radians(r.Angles[2])
}

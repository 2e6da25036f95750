package render

import (
	"fmt"
	"math"

	"github.com/taigrr/asciicube/pkg/math3d"
)

// minDenominator is the smallest |zoom + z| Project will divide by.
const minDenominator = 1e-6

// Projector maps rotated model-space points onto the character grid.
type Projector struct {
	Width  int // Viewport columns
	Height int // Viewport rows

	// Zoom is the perspective factor: the viewer sits at z = -Zoom and points
	// with larger z shrink toward the center.
	Zoom float64

	// Offsets shift the projected image away from the viewport center.
	OffsetX float64
	OffsetY float64
}

// NewProjector creates a projector centered on a width x height viewport.
func NewProjector(width, height int, zoom float64) Projector {
	return Projector{
		Width:  width,
		Height: height,
		Zoom:   zoom,
	}
}

// Center returns the screen position of the model-space origin.
func (p Projector) Center() math3d.Vec2 {
	return math3d.V2(
		float64(p.Width)/2+p.OffsetX,
		float64(p.Height)/2+p.OffsetY,
	)
}

// Project maps v to screen coordinates. Screen y grows downward. Points where
// zoom + z is too close to zero have no finite projection and return
// ErrDegenerateProjection.
func (p Projector) Project(v math3d.Vec3) (math3d.Vec2, error) {
	denom := p.Zoom + v.Z
	if math.Abs(denom) < minDenominator || math.IsNaN(denom) {
		return math3d.Vec2{}, fmt.Errorf("%w: zoom %g + z %g", ErrDegenerateProjection, p.Zoom, v.Z)
	}
	factor := p.Zoom / denom

	c := p.Center()
	out := math3d.V2(
		c.X+factor*v.X*float64(p.Width)/2,
		c.Y-factor*v.Y*float64(p.Height)/2,
	)
	if !out.IsFinite() {
		return math3d.Vec2{}, fmt.Errorf("%w: non-finite result for %v", ErrDegenerateProjection, v)
	}
	return out, nil
}

package render

import (
	"fmt"

	"github.com/taigrr/asciicube/pkg/math3d"
)

// ShadeLevel is one of the three quantized light levels.
type ShadeLevel int

const (
	ShadeBright ShadeLevel = iota // intensity > 2/3
	ShadeMid                      // intensity > 1/3
	ShadeDark                     // everything else
)

// String returns the level name.
func (l ShadeLevel) String() string {
	switch l {
	case ShadeBright:
		return "bright"
	case ShadeMid:
		return "mid"
	case ShadeDark:
		return "dark"
	default:
		return fmt.Sprintf("ShadeLevel(%d)", int(l))
	}
}

// Quantize maps a light intensity to a shade level.
func Quantize(intensity float64) ShadeLevel {
	switch {
	case intensity > 2.0/3.0:
		return ShadeBright
	case intensity > 1.0/3.0:
		return ShadeMid
	default:
		return ShadeDark
	}
}

// Shades holds the glyph for each shade level.
type Shades struct {
	Bright rune
	Mid    rune
	Dark   rune
}

// DefaultShades returns the ". - #" glyph set.
func DefaultShades() Shades {
	return Shades{Bright: '.', Mid: '-', Dark: '#'}
}

// ParseShades reads a glyph set from a string of exactly three characters,
// brightest first.
func ParseShades(s string) (Shades, error) {
	r := []rune(s)
	if len(r) != 3 {
		return Shades{}, fmt.Errorf("shades %q: want exactly 3 characters, got %d", s, len(r))
	}
	return Shades{Bright: r[0], Mid: r[1], Dark: r[2]}, nil
}

// String returns the glyphs brightest first.
func (s Shades) String() string {
	return string([]rune{s.Bright, s.Mid, s.Dark})
}

// ForLevel returns the glyph for a level.
func (s Shades) ForLevel(l ShadeLevel) rune {
	switch l {
	case ShadeBright:
		return s.Bright
	case ShadeMid:
		return s.Mid
	default:
		return s.Dark
	}
}

// Glyph returns the glyph for a light intensity.
func (s Shades) Glyph(intensity float64) rune {
	return s.ForLevel(Quantize(intensity))
}

// FaceNormal returns the unit normal of a face from its first three points:
// normalize((v1 - v0) × (v2 - v0)). With fewer than three points it returns
// the zero vector and ErrMalformedFace.
func FaceNormal(vertices []math3d.Vec3) (math3d.Vec3, error) {
	if len(vertices) < 3 {
		return math3d.Zero3(), fmt.Errorf("%w: %d vertices", ErrMalformedFace, len(vertices))
	}
	v0, v1, v2 := vertices[0], vertices[1], vertices[2]
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(), nil
}

// Intensity returns the diffuse light reaching a face, clamped to [0, 1].
// Faces turned away from the light get 0.
func Intensity(normal, light math3d.Vec3) float64 {
	return min(1, max(0, normal.Dot(light)))
}

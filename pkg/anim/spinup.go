package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// settled is how close to full speed the spin-up must get before it snaps to 1.
const settled = 1e-3

// SpinUp eases the rotation speed from standstill to full speed with a
// critically damped spring.
type SpinUp struct {
	spring   harmonica.Spring
	factor   float64
	velocity float64 // internal spring velocity
}

// NewSpinUp creates a spin-up stepped once per frame delay.
func NewSpinUp(delay time.Duration) *SpinUp {
	fps := 1
	if delay > 0 && delay < time.Second {
		fps = int(time.Second / delay)
	}
	return &SpinUp{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Factor returns the current speed factor in [0, 1].
func (s *SpinUp) Factor() float64 {
	return s.factor
}

// Done reports whether the spin-up has reached full speed.
func (s *SpinUp) Done() bool {
	return s.factor == 1
}

// Update steps the spring one frame toward full speed and returns the new
// factor.
func (s *SpinUp) Update() float64 {
	if s.Done() {
		return 1
	}
	s.factor, s.velocity = s.spring.Update(s.factor, s.velocity, 1)
	if 1-s.factor < settled && s.velocity < settled && s.velocity > -settled {
		s.factor, s.velocity = 1, 0
	}
	s.factor = min(1, max(0, s.factor))
	return s.factor
}

package render

import "errors"

var (
	// ErrMalformedFace is returned when a face has fewer than 3 usable vertices.
	ErrMalformedFace = errors.New("malformed face")

	// ErrDegenerateProjection is returned when a point cannot be projected
	// because its perspective denominator is (nearly) zero.
	ErrDegenerateProjection = errors.New("degenerate projection")
)

// Diagnostics receives non-fatal warnings raised while rendering a frame.
// *zap.SugaredLogger satisfies it.
type Diagnostics interface {
	Warnf(template string, args ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any) {}

// NopDiagnostics discards every warning.
var NopDiagnostics Diagnostics = nopDiagnostics{}

package render

import (
	"github.com/taigrr/asciicube/pkg/math3d"
	"github.com/taigrr/asciicube/pkg/models"
)

// Wireframe strokes mesh edges into a screen buffer.
type Wireframe struct {
	buf   *ScreenBuffer
	glyph rune
}

// NewWireframe creates a wireframe renderer drawing with glyph.
func NewWireframe(buf *ScreenBuffer, glyph rune) *Wireframe {
	return &Wireframe{
		buf:   buf,
		glyph: glyph,
	}
}

// DrawLine2D draws one segment between projected points.
func (w *Wireframe) DrawLine2D(p1, p2 math3d.Vec2) {
	w.buf.DrawLine(p1, p2, w.glyph)
}

// DrawEdges strokes every edge whose endpoints both have a projection.
// points holds the projected vertices; valid marks which of them exist.
// It returns the number of edges handed to the line drawer.
func (w *Wireframe) DrawEdges(edges []models.Edge, points []math3d.Vec2, valid []bool) int {
	drawn := 0
	for _, e := range edges {
		a, b := e[0], e[1]
		if !validIndex(a, valid) || !validIndex(b, valid) {
			continue
		}
		w.DrawLine2D(points[a], points[b])
		drawn++
	}
	return drawn
}

func validIndex(i int, valid []bool) bool {
	return i >= 0 && i < len(valid) && valid[i]
}

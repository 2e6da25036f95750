package render

import (
	"math"
	"slices"

	"github.com/taigrr/asciicube/pkg/math3d"
)

// DrawLine draws a line from p1 to p2 using Bresenham's algorithm. Endpoints
// are rounded to the nearest cell. If either endpoint lies outside the buffer
// nothing is drawn: segments are skipped, not clipped.
func (b *ScreenBuffer) DrawLine(p1, p2 math3d.Vec2, glyph rune) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return
	}
	x0, y0 := p1.Round()
	x1, y1 := p2.Round()
	if !b.InBounds(x0, y0) || !b.InBounds(x1, y1) {
		return
	}

	switch {
	case x0 == x1:
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			b.Set(x0, y, glyph)
		}
		return
	case y0 == y1:
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			b.Set(x, y0, glyph)
		}
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		b.Set(x0, y0, glyph)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon fills the polygon outlined by points with a scanline sweep.
// Each integer row between the lowest and highest point collects the
// crossings of edges that straddle it (half-open in y, so shared endpoints
// are counted once and horizontal edges never count), sorts them and fills
// [ceil(x_i), floor(x_i+1)] pairwise. Fewer than 3 points draws nothing.
func (b *ScreenBuffer) FillPolygon(points []math3d.Vec2, glyph rune) {
	n := len(points)
	if n < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if !p.IsFinite() {
			return
		}
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Rows outside the buffer have nothing to fill.
	top := math.Max(math.Ceil(minY), 0)
	bottom := math.Min(math.Floor(maxY), float64(b.Height-1))
	if top > bottom {
		return
	}

	xs := make([]float64, 0, n)
	for y := int(top); y <= int(bottom); y++ {
		fy := float64(y)
		xs = xs[:0]
		for i := range n {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= fy && fy < p2.Y) || (p2.Y <= fy && fy < p1.Y) {
				xs = append(xs, (fy-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)+p1.X)
			}
		}
		slices.Sort(xs)
		b.fillSpans(y, xs, glyph)
	}
}

// fillSpans fills row y between sorted crossings taken two at a time. A
// trailing crossing without a partner is filled to the right edge of the
// buffer.
func (b *ScreenBuffer) fillSpans(y int, xs []float64, glyph rune) {
	if y < 0 || y >= b.Height {
		return
	}
	right := float64(b.Width - 1)
	for i := 0; i < len(xs); i += 2 {
		start := math.Max(math.Ceil(xs[i]), 0)
		end := right
		if i+1 < len(xs) {
			end = math.Min(math.Floor(xs[i+1]), right)
		}
		if start > end {
			continue
		}
		row := b.Cells[y*b.Width : (y+1)*b.Width]
		for x := int(start); x <= int(end); x++ {
			row[x] = glyph
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

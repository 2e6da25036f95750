// Package render rasterizes the cube into a character grid.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Blank is the glyph of an empty cell.
const Blank = ' '

// ScreenBuffer is a height x width grid of glyphs. It is cleared at the start
// of every frame and owned by whoever is rendering that frame.
type ScreenBuffer struct {
	Width  int    // Columns
	Height int    // Rows
	Cells  []rune // Row-major glyph data
}

// NewScreenBuffer creates a blank buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	b := &ScreenBuffer{
		Width:  width,
		Height: height,
		Cells:  make([]rune, width*height),
	}
	b.Clear()
	return b
}

// Clear fills the buffer with Blank.
func (b *ScreenBuffer) Clear() {
	// Runs every frame; each copy doubles the blanked prefix.
	n := len(b.Cells)
	if n == 0 {
		return
	}
	b.Cells[0] = Blank
	for i := 1; i < n; i *= 2 {
		copy(b.Cells[i:], b.Cells[:i])
	}
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *ScreenBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set sets the glyph at (x, y). Out-of-bounds writes are ignored.
func (b *ScreenBuffer) Set(x, y int, glyph rune) {
	if !b.InBounds(x, y) {
		return
	}
	b.Cells[y*b.Width+x] = glyph
}

// At returns the glyph at (x, y), or Blank if out of bounds.
func (b *ScreenBuffer) At(x, y int) rune {
	if !b.InBounds(x, y) {
		return Blank
	}
	return b.Cells[y*b.Width+x]
}

// Row returns row y as a string.
func (b *ScreenBuffer) Row(y int) string {
	if y < 0 || y >= b.Height {
		return ""
	}
	return string(b.Cells[y*b.Width : (y+1)*b.Width])
}

// Lines returns every row as a string.
func (b *ScreenBuffer) Lines() []string {
	lines := make([]string, b.Height)
	for y := range b.Height {
		lines[y] = b.Row(y)
	}
	return lines
}

// String returns the rows joined by newlines.
func (b *ScreenBuffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Count returns how many cells hold glyph.
func (b *ScreenBuffer) Count(glyph rune) int {
	n := 0
	for _, c := range b.Cells {
		if c == glyph {
			n++
		}
	}
	return n
}

// Glyph cell size of basicfont.Face7x13.
const (
	cellWidth  = 7
	cellHeight = 13
)

// ToImage renders the buffer with a fixed 7x13 bitmap font on bg. Glyph
// colors come from the palette; glyphs it does not know are drawn white.
func (b *ScreenBuffer) ToImage(p Palette, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width*cellWidth, b.Height*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Face: face}

	for y := range b.Height {
		for x := range b.Width {
			g := b.Cells[y*b.Width+x]
			if g == Blank {
				continue
			}
			c := p.ColorOf(g)
			if c == nil {
				c = color.White
			}
			d.Src = image.NewUniform(c)
			d.Dot = fixed.P(x*cellWidth, y*cellHeight+face.Ascent)
			d.DrawString(string(g))
		}
	}
	return img
}

// SavePNG saves the rendered buffer as a PNG file.
func (b *ScreenBuffer) SavePNG(path string, p Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, b.ToImage(p, color.Black))
}

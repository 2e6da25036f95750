package render

import (
	"image/color"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Palette assigns a color to each shade glyph and to the outline glyph.
type Palette struct {
	Shades  Shades
	Outline rune

	Bright    color.Color
	Mid       color.Color
	Dark      color.Color
	OutlineFg color.Color
}

// DefaultPalette draws bright faces red, mid faces green and dark faces
// blue, with a yellow outline.
func DefaultPalette(shades Shades, outline rune) Palette {
	return Palette{
		Shades:    shades,
		Outline:   outline,
		Bright:    ansi.BrightRed,
		Mid:       ansi.BrightGreen,
		Dark:      ansi.BrightBlue,
		OutlineFg: ansi.BrightYellow,
	}
}

// ColorOf returns the color of glyph, or nil if the palette has none.
// The outline wins when it shares a glyph with a shade.
func (p Palette) ColorOf(glyph rune) color.Color {
	switch glyph {
	case p.Outline:
		return p.OutlineFg
	case p.Shades.Bright:
		return p.Bright
	case p.Shades.Mid:
		return p.Mid
	case p.Shades.Dark:
		return p.Dark
	}
	return nil
}

var namedColors = map[string]ansi.BasicColor{
	"black":          ansi.Black,
	"red":            ansi.Red,
	"green":          ansi.Green,
	"yellow":         ansi.Yellow,
	"blue":           ansi.Blue,
	"magenta":        ansi.Magenta,
	"cyan":           ansi.Cyan,
	"white":          ansi.White,
	"bright_black":   ansi.BrightBlack,
	"bright_red":     ansi.BrightRed,
	"bright_green":   ansi.BrightGreen,
	"bright_yellow":  ansi.BrightYellow,
	"bright_blue":    ansi.BrightBlue,
	"bright_magenta": ansi.BrightMagenta,
	"bright_cyan":    ansi.BrightCyan,
	"bright_white":   ansi.BrightWhite,
}

// ColorByName looks up one of the 16 ANSI color names ("red",
// "bright_blue", ...). Names are case-insensitive.
func ColorByName(name string) (color.Color, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return c, true
}

// Draw converts the buffer to terminal cells inside area.
// A nil palette color draws the glyph with the terminal's default style.
func (b *ScreenBuffer) Draw(scr uv.Screen, area uv.Rectangle, p *Palette) {
	for row := area.Min.Y; row < area.Max.Y && row-area.Min.Y < b.Height; row++ {
		y := row - area.Min.Y
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < b.Width; col++ {
			x := col - area.Min.X
			glyph := b.Cells[y*b.Width+x]

			cell := &uv.Cell{
				Content: string(glyph),
				Width:   1,
			}
			if p != nil && glyph != Blank {
				cell.Style = uv.Style{Fg: p.ColorOf(glyph)}
			}
			scr.SetCell(col, row, cell)
		}
	}
}

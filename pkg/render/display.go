package render

import (
	"bufio"
	"io"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Display presents a finished frame. It is called once per frame with a
// fully rendered buffer and must not keep it after returning.
type Display interface {
	Present(buf *ScreenBuffer) error
}

// Terminal is the part of *uv.Terminal the terminal display needs.
type Terminal interface {
	uv.Screen
	Display() error
}

// TerminalDisplay draws frames into an ultraviolet terminal.
type TerminalDisplay struct {
	term    Terminal
	palette *Palette
}

// NewTerminalDisplay creates a terminal display. A nil palette draws
// monochrome glyphs.
func NewTerminalDisplay(term Terminal, palette *Palette) *TerminalDisplay {
	return &TerminalDisplay{
		term:    term,
		palette: palette,
	}
}

// Present draws buf at the top-left corner of the terminal and flushes it.
// Cells past the terminal edge are dropped.
func (d *TerminalDisplay) Present(buf *ScreenBuffer) error {
	area := uv.Rect(0, 0, buf.Width, buf.Height).Intersect(d.term.Bounds())
	buf.Draw(d.term, area, d.palette)
	return d.term.Display()
}

// WriterDisplay prints frames as plain text. With Redraw set, every frame
// after the first moves the cursor home so frames overwrite each other.
type WriterDisplay struct {
	w       io.Writer
	Redraw  bool
	started bool
}

// NewWriterDisplay creates a display writing to w.
func NewWriterDisplay(w io.Writer, redraw bool) *WriterDisplay {
	return &WriterDisplay{
		w:      w,
		Redraw: redraw,
	}
}

// Present writes every row of buf followed by a newline.
func (d *WriterDisplay) Present(buf *ScreenBuffer) error {
	bw := bufio.NewWriter(d.w)
	if d.Redraw {
		if !d.started {
			bw.WriteString(ansi.EraseEntireScreen)
		}
		bw.WriteString(ansi.CursorHomePosition)
	}
	d.started = true

	for y := range buf.Height {
		bw.WriteString(buf.Row(y))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

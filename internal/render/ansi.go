// Package render draws maze frames: truecolor ANSI for the terminal and
// palette RGBA for the GUI build.
package render

import (
	"bytes"
	"io"

	"mazeviz/internal/core"
)

// Background colors per cell state, 24-bit ANSI escapes.
const (
	colReset    = "\x1b[0m"
	colWall     = "\x1b[48;2;20;28;36m"
	colEmpty    = "\x1b[48;2;240;245;250m"
	colVisited  = "\x1b[48;2;16;185;129m"
	colFrontier = "\x1b[48;2;96;165;250m"
	colPath     = "\x1b[48;2;244;63;94m"
	colEndpoint = "\x1b[48;2;251;191;36m"

	// Two spaces per cell so terminal cells come out roughly square.
	cellBlock = "  "
)

// Cursor and screen control sequences.
const (
	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
)

// ClearScreen erases the terminal contents.
func ClearScreen(w io.Writer) { io.WriteString(w, escClearScreen) }

// HideCursor hides the terminal cursor for the duration of the animation.
func HideCursor(w io.Writer) { io.WriteString(w, escHideCursor) }

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) { io.WriteString(w, escShowCursor) }

// Painter renders whole maze frames to a terminal. Each frame is assembled in
// a reusable buffer and written in a single call, which keeps redraws
// flicker-free at animation rates.
type Painter struct {
	out        io.Writer
	buf        bytes.Buffer
	start, end core.Point
}

// NewPainter returns a painter that highlights start and end as endpoints.
func NewPainter(out io.Writer, start, end core.Point) *Painter {
	return &Painter{out: out, start: start, end: end}
}

// Frame redraws the full grid from the cursor home position.
func (p *Painter) Frame(g *core.Grid) {
	p.buf.Reset()
	p.buf.WriteString(escCursorHome)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p.buf.WriteString(p.cellColor(g, r, c))
			p.buf.WriteString(cellBlock)
			p.buf.WriteString(colReset)
		}
		p.buf.WriteByte('\n')
	}
	p.out.Write(p.buf.Bytes())
}

// cellColor picks the background for one cell. Endpoints override everything;
// among the mark bits, path wins over frontier wins over visited.
func (p *Painter) cellColor(g *core.Grid, r, c int) string {
	if (r == p.start.Row && c == p.start.Col) || (r == p.end.Row && c == p.end.Col) {
		return colEndpoint
	}
	if g.Cell(r, c) == core.CellWall {
		return colWall
	}
	m := g.Mark(r, c)
	switch {
	case m&core.MarkPath != 0:
		return colPath
	case m&core.MarkFrontier != 0:
		return colFrontier
	case m&core.MarkVisited != 0:
		return colVisited
	}
	return colEmpty
}

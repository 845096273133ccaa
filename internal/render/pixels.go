package render

import (
	"image/color"

	"mazeviz/internal/core"
)

// Palette indices for grid states in the GUI build.
const (
	paletteOpen = iota
	paletteWall
	paletteVisited
	paletteFrontier
	palettePath
	paletteEndpoint
)

// DefaultPalette mirrors the terminal colors, one entry per palette index.
var DefaultPalette = []color.RGBA{
	{R: 240, G: 245, B: 250, A: 255},
	{R: 20, G: 28, B: 36, A: 255},
	{R: 16, G: 185, B: 129, A: 255},
	{R: 96, G: 165, B: 250, A: 255},
	{R: 244, G: 63, B: 94, A: 255},
	{R: 251, G: 191, B: 36, A: 255},
}

// FillRGBA converts grid state into RGBA pixels in buf, one pixel per cell.
// buf must hold 4 bytes per cell. Precedence matches the terminal painter:
// endpoints, then wall, then path over frontier over visited.
func FillRGBA(buf []byte, g *core.Grid, start, end core.Point, palette []color.RGBA) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			idx := paletteOpen
			switch {
			case (r == start.Row && c == start.Col) || (r == end.Row && c == end.Col):
				idx = paletteEndpoint
			case g.Cell(r, c) == core.CellWall:
				idx = paletteWall
			default:
				m := g.Mark(r, c)
				switch {
				case m&core.MarkPath != 0:
					idx = palettePath
				case m&core.MarkFrontier != 0:
					idx = paletteFrontier
				case m&core.MarkVisited != 0:
					idx = paletteVisited
				}
			}
			col := palette[idx]
			base := (r*g.Cols + c) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mazeviz/internal/core"
)

// GridPainter updates a single RGBA image from grid state and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter sized for g, one pixel per cell.
func NewGridPainter(g *core.Grid) *GridPainter {
	gp := &GridPainter{w: g.Cols, h: g.Rows, buf: make([]byte, 4*g.Cols*g.Rows)}
	gp.img = ebiten.NewImage(g.Cols, g.Rows)
	return gp
}

// Blit uploads the grid state into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, start, end core.Point, scale int) {
	if g.Cols != gp.w || g.Rows != gp.h {
		return
	}
	FillRGBA(gp.buf, g, start, end, DefaultPalette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

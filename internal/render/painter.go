//go:build ebiten

package render

import (
	"lattice-ca/internal/lattice"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image sized to the grid and draws it scaled.
// The image is reallocated when the grid changes size, which the None
// boundary does as it grows.
type GridPainter struct {
	palette Palette
	scale   int

	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter drawing each cell as a scale x scale block.
func NewGridPainter(palette Palette, scale int) *GridPainter {
	if scale < 1 {
		scale = 1
	}
	return &GridPainter{palette: palette, scale: scale}
}

// DrawLattice paints the lattice onto dst.
func (gp *GridPainter) DrawLattice(dst *ebiten.Image, l *lattice.Lattice) {
	gp.fit(l.Cols(), l.Rows())
	gp.palette.FillLattice(gp.buf, l)
	gp.present(dst)
}

// DrawCells paints a w x h buffer of 0/1 cell values onto dst.
func (gp *GridPainter) DrawCells(dst *ebiten.Image, cells []uint8, w, h int) {
	if len(cells) != w*h {
		return
	}
	gp.fit(w, h)
	gp.palette.Fill(gp.buf, cells)
	gp.present(dst)
}

func (gp *GridPainter) fit(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

func (gp *GridPainter) present(dst *ebiten.Image) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
}

package render

import (
	"image/color"

	"lattice-ca/internal/lattice"
)

// Palette maps live and dead cells to RGBA pixels.
type Palette struct {
	alive, dead [4]byte
}

// NewPalette builds a palette from the live and dead colours.
func NewPalette(alive, dead color.Color) Palette {
	return Palette{alive: rgba(alive), dead: rgba(dead)}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (p Palette) pixel(alive bool) [4]byte {
	if alive {
		return p.alive
	}
	return p.dead
}

// Fill writes one pixel per cell value into buf; non-zero values are alive.
func (p Palette) Fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := p.pixel(c != 0)
		copy(buf[i*4:i*4+4], px[:])
	}
}

// FillLattice writes one pixel per lattice cell into buf in row-major order.
// buf must hold 4*Rows*Cols bytes.
func (p Palette) FillLattice(buf []byte, l *lattice.Lattice) {
	cols := l.Cols()
	l.Each(func(pos lattice.Position, alive bool) {
		i := (pos.Row*cols + pos.Col) * 4
		px := p.pixel(alive)
		copy(buf[i:i+4], px[:])
	})
}

package core

import "lattice-ca/internal/lattice"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Resize changes the dimensions, reallocating only when the grid gets
// larger. The contents are undefined afterwards.
func (g *ByteGrid) Resize(w, h int) {
	if w == g.W && h == g.H {
		return
	}
	g.W, g.H = w, h
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
		return
	}
	g.data = make([]uint8, w*h)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Capture copies the lattice into the grid, 1 for live cells and 0 for dead,
// resizing first if the lattice has grown.
func (g *ByteGrid) Capture(l *lattice.Lattice) {
	g.Resize(l.Cols(), l.Rows())
	l.Each(func(p lattice.Position, alive bool) {
		var v uint8
		if alive {
			v = 1
		}
		g.data[g.Index(p.Col, p.Row)] = v
	})
}

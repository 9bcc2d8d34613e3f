package lattice

// Neighborhood selects which cells feed a cell's transition rule.
type Neighborhood uint8

const (
	// Moore uses the eight surrounding cells.
	Moore Neighborhood = iota
	// Pair uses only the left and right cells of a one-dimensional line.
	Pair
)

var (
	mooreOffsets = []Position{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	pairOffsets = []Position{{0, -1}, {0, 1}}
)

func (n Neighborhood) String() string {
	if n == Pair {
		return "pair"
	}
	return "moore"
}

// offsets lists neighbor displacements in the order rules receive them.
func (n Neighborhood) offsets() []Position {
	if n == Pair {
		return pairOffsets
	}
	return mooreOffsets
}

// spansRows reports whether neighbors are read from adjacent rows, and so
// whether padding has to extend the row axis.
func (n Neighborhood) spansRows() bool { return n == Moore }

// deadGlyph is the glyph used for dead cells when rendering for display.
func (n Neighborhood) deadGlyph() byte {
	if n == Pair {
		return ' '
	}
	return DeadGlyph
}

package lattice

// margins counts rows or columns added on each side of the grid.
type margins struct {
	top, bottom, left, right int
}

// ring is one layer of padding on every axis the neighborhood reads.
func (l *Lattice) ring() margins {
	if l.neighborhood.spansRows() {
		return margins{top: 1, bottom: 1, left: 1, right: 1}
	}
	return margins{left: 1, right: 1}
}

// pad grows the grid for the active boundary and returns the margins added.
func (l *Lattice) pad() margins {
	switch l.boundary {
	case None:
		m := l.liveEdges()
		l.grow(m, func(int, int) bool { return false })
		return m
	case OpenHot:
		m := l.ring()
		l.grow(m, func(int, int) bool { return true })
		return m
	case Periodic:
		m := l.ring()
		rows, cols := l.rows, l.cols
		l.grow(m, func(row, col int) bool {
			return l.cells[wrap(row, rows)*cols+wrap(col, cols)].state
		})
		return m
	default:
		m := l.ring()
		l.grow(m, func(int, int) bool { return false })
		return m
	}
}

// liveEdges finds the edges touched by a live cell. A corner cell counts for
// both of its edges.
func (l *Lattice) liveEdges() margins {
	var m margins
	rowsToo := l.neighborhood.spansRows()
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			if !l.cells[r*l.cols+c].state {
				continue
			}
			if rowsToo && r == 0 {
				m.top = 1
			}
			if rowsToo && r == l.rows-1 {
				m.bottom = 1
			}
			if c == 0 {
				m.left = 1
			}
			if c == l.cols-1 {
				m.right = 1
			}
		}
	}
	return m
}

// grow surrounds the grid with m. New cells take fill(row, col), where row
// and col are coordinates in the grid before growth (so -1 is above row 0).
// fill runs while the old cells are still in place.
func (l *Lattice) grow(m margins, fill func(row, col int) bool) {
	if m == (margins{}) {
		return
	}
	rows := l.rows + m.top + m.bottom
	cols := l.cols + m.left + m.right
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			or, oc := r-m.top, c-m.left
			if l.Contains(or, oc) {
				cells[r*cols+c] = l.cells[or*l.cols+oc]
				continue
			}
			cells[r*cols+c].SetState(fill(or, oc))
		}
	}
	l.rows, l.cols, l.cells = rows, cols, cells
	l.reindex()
}

// shrink removes m from the edges of the grid.
func (l *Lattice) shrink(m margins) {
	if m == (margins{}) {
		return
	}
	rows := l.rows - m.top - m.bottom
	cols := l.cols - m.left - m.right
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		src := (r+m.top)*l.cols + m.left
		copy(cells[r*cols:(r+1)*cols], l.cells[src:src+cols])
	}
	l.rows, l.cols, l.cells = rows, cols, cells
	l.reindex()
}

func wrap(i, n int) int {
	return (i%n + n) % n
}

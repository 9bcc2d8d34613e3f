package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Lattice owns a row-major grid of cells and advances it one generation at a
// time under a boundary policy.
type Lattice struct {
	rows, cols int
	cells      []Cell

	boundary     Boundary
	neighborhood Neighborhood
	rule         Rule

	populationMode bool
	generation     int

	scratch []bool
}

// Option configures a Lattice at construction time.
type Option func(*Lattice)

// WithBoundary sets the boundary policy. The default is OpenCold.
func WithBoundary(b Boundary) Option {
	return func(l *Lattice) { l.boundary = b }
}

// WithNeighborhood sets the neighborhood shape. The default is Moore.
func WithNeighborhood(n Neighborhood) Option {
	return func(l *Lattice) { l.neighborhood = n }
}

// WithRule sets the transition rule. The default is Conway.
func WithRule(r Rule) Option {
	return func(l *Lattice) {
		if r != nil {
			l.rule = r
		}
	}
}

// Elementary configures a one-dimensional rule 110 line.
func Elementary() Option {
	return func(l *Lattice) {
		l.neighborhood = Pair
		l.rule = Rule110
	}
}

// New returns an all-dead lattice with the given logical size.
func New(rows, cols int, opts ...Option) (*Lattice, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	l := &Lattice{
		rows:         rows,
		cols:         cols,
		cells:        make([]Cell, rows*cols),
		boundary:     OpenCold,
		neighborhood: Moore,
		rule:         Conway,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.scratch = make([]bool, 0, len(l.neighborhood.offsets()))
	l.reindex()
	return l, nil
}

// Rows returns the current number of rows.
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the current number of columns.
func (l *Lattice) Cols() int { return l.cols }

// Boundary returns the active boundary policy.
func (l *Lattice) Boundary() Boundary { return l.boundary }

// SetBoundary switches the policy used by subsequent generations.
func (l *Lattice) SetBoundary(b Boundary) { l.boundary = b }

// Neighborhood returns the neighborhood shape.
func (l *Lattice) Neighborhood() Neighborhood { return l.neighborhood }

// Generation counts the generations advanced since construction.
func (l *Lattice) Generation() int { return l.generation }

// PopulationMode reports whether Report shows the live-cell count instead of
// the grid.
func (l *Lattice) PopulationMode() bool { return l.populationMode }

// SetPopulationMode selects what Report shows.
func (l *Lattice) SetPopulationMode(on bool) { l.populationMode = on }

// TogglePopulationMode flips the report mode and returns the new value.
func (l *Lattice) TogglePopulationMode() bool {
	l.populationMode = !l.populationMode
	return l.populationMode
}

// Contains reports whether (row, col) lies inside the current grid.
func (l *Lattice) Contains(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// At returns a copy of the cell at (row, col).
func (l *Lattice) At(row, col int) (Cell, error) {
	if !l.Contains(row, col) {
		return Cell{}, l.rangeError(row, col)
	}
	return l.cells[row*l.cols+col], nil
}

// State reports whether the cell at (row, col) is alive.
func (l *Lattice) State(row, col int) (bool, error) {
	c, err := l.At(row, col)
	return c.state, err
}

// SetState sets the cell at (row, col).
func (l *Lattice) SetState(row, col int, alive bool) error {
	if !l.Contains(row, col) {
		return l.rangeError(row, col)
	}
	l.cells[row*l.cols+col].SetState(alive)
	return nil
}

// SetAlive marks the cell at p alive. Each position is checked on its own so
// callers can reject bad input and keep going.
func (l *Lattice) SetAlive(p Position) error {
	return l.SetState(p.Row, p.Col, true)
}

// Each calls fn for every cell in row-major order.
func (l *Lattice) Each(fn func(p Position, alive bool)) {
	for i := range l.cells {
		fn(l.cells[i].pos, l.cells[i].state)
	}
}

// Population counts the live cells.
func (l *Lattice) Population() int {
	n := 0
	for i := range l.cells {
		if l.cells[i].state {
			n++
		}
	}
	return n
}

// Advance computes one generation: pad the grid for the boundary policy,
// stage every logical cell, commit them all, then strip the padding again.
func (l *Lattice) Advance() {
	pad := l.pad()

	// None has no separate ring, the whole grown grid is logical.
	region := pad
	clip := !l.boundary.shrinks()
	if clip {
		region = margins{}
	}

	for r := region.top; r < l.rows-region.bottom; r++ {
		for c := region.left; c < l.cols-region.right; c++ {
			cell := l.at(r, c)
			cell.Stage(l.rule(cell.state, l.neighbors(r, c, clip)))
		}
	}
	for r := region.top; r < l.rows-region.bottom; r++ {
		for c := region.left; c < l.cols-region.right; c++ {
			l.at(r, c).Commit()
		}
	}

	if l.boundary.shrinks() {
		l.shrink(pad)
	}
	l.generation++
}

// Report returns the live-cell count in population mode and the rendered
// grid otherwise.
func (l *Lattice) Report() string {
	if l.populationMode {
		return strconv.Itoa(l.Population())
	}
	return l.String()
}

// String renders the grid row by row, X for live cells.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(l.rows * (l.cols + 1))
	dead := l.neighborhood.deadGlyph()
	for r := 0; r < l.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < l.cols; c++ {
			if l.cells[r*l.cols+c].state {
				b.WriteByte(AliveGlyph)
			} else {
				b.WriteByte(dead)
			}
		}
	}
	return b.String()
}

// neighbors collects the states around (row, col). With clip set, positions
// outside the grid read as dead; otherwise they are a padding bug.
func (l *Lattice) neighbors(row, col int, clip bool) []bool {
	l.scratch = l.scratch[:0]
	for _, off := range l.neighborhood.offsets() {
		r, c := row+off.Row, col+off.Col
		if clip && !l.Contains(r, c) {
			l.scratch = append(l.scratch, false)
			continue
		}
		l.scratch = append(l.scratch, l.at(r, c).state)
	}
	return l.scratch
}

// at looks up a cell during Advance, where an out-of-range position means
// the padding arithmetic is wrong.
func (l *Lattice) at(row, col int) *Cell {
	if !l.Contains(row, col) {
		panic(l.rangeError(row, col))
	}
	return &l.cells[row*l.cols+col]
}

func (l *Lattice) rangeError(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, l.rows, l.cols)
}

func (l *Lattice) reindex() {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			l.cells[r*l.cols+c].SetPosition(r, c)
		}
	}
}

package lattice

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Cell is a single site of the lattice. The staged next state only becomes
// visible through State after Commit.
type Cell struct {
	pos   Position
	state bool
	next  bool
}

// State reports whether the cell is alive.
func (c *Cell) State() bool { return c.state }

// SetState overwrites the current state.
func (c *Cell) SetState(alive bool) { c.state = alive }

// Stage records the state the cell takes on the next Commit.
func (c *Cell) Stage(alive bool) { c.next = alive }

// Commit applies the staged state.
func (c *Cell) Commit() { c.state = c.next }

// Position returns the cell's coordinates in the grid that owns it.
func (c *Cell) Position() Position { return c.pos }

// SetPosition re-indexes the cell. Only the lattice calls this while resizing.
func (c *Cell) SetPosition(row, col int) {
	c.pos = Position{Row: row, Col: col}
}

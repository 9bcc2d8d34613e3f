package life

import (
	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
)

// Life runs Conway's Game of Life on a Moore lattice.
type Life struct {
	cfg  Config
	lat  *lattice.Lattice
	grid *core.ByteGrid
}

// New returns a Life simulation with an empty lattice of the configured size.
func New(cfg Config) *Life {
	l := &Life{cfg: cfg, grid: core.NewByteGrid(cfg.Cols, cfg.Rows)}
	l.lat = l.blank()
	return l
}

func (l *Life) blank() *lattice.Lattice {
	lat, err := lattice.New(l.cfg.Rows, l.cfg.Cols, lattice.WithBoundary(l.cfg.Boundary))
	if err != nil {
		// FromMap only accepts positive sizes.
		panic(err)
	}
	return lat
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions, which can grow under the None boundary.
func (l *Life) Size() core.Size { return core.Size{W: l.lat.Cols(), H: l.lat.Rows()} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 {
	l.grid.Capture(l.lat)
	return l.grid.Cells()
}

// Reset randomizes a fresh lattice using the provided seed.
func (l *Life) Reset(seed int64) {
	lat := l.blank()
	lat.SetPopulationMode(l.lat.PopulationMode())
	core.NewRNG(seed).Populate(lat, l.cfg.Density)
	l.lat = lat
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.lat.Advance() }

// Lattice exposes the underlying lattice.
func (l *Life) Lattice() *lattice.Lattice { return l.lat }

// Adopt replaces the lattice, e.g. with one loaded from a file.
func (l *Life) Adopt(lat *lattice.Lattice) {
	l.lat = lat
	l.cfg.Rows, l.cfg.Cols = lat.Rows(), lat.Cols()
	l.cfg.Boundary = lat.Boundary()
}

// Parameters describes the lattice for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.LatticeParameters(l.lat)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

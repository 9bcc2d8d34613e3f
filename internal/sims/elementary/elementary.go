package elementary

import (
	"strconv"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Boundary lattice.Boundary
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Boundary: lattice.Periodic}
}

// FromMap populates a Config from a string map. "cols" sets the line width
// and "rows" the number of generations kept on screen.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["border"]; ok {
		if parsed, err := lattice.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	return c
}

// Elementary runs rule 110 on a one-dimensional lattice and projects the
// recent generations vertically, newest on top.
type Elementary struct {
	cfg  Config
	lat  *lattice.Lattice
	line *core.ByteGrid
	cur  []uint8
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	e := &Elementary{cfg: cfg, line: core.NewByteGrid(cfg.Width, 1)}
	e.lat = e.blank()
	e.cur = make([]uint8, cfg.Width*cfg.Height)
	return e
}

func (e *Elementary) blank() *lattice.Lattice {
	lat, err := lattice.New(1, e.cfg.Width, lattice.Elementary(), lattice.WithBoundary(e.cfg.Boundary))
	if err != nil {
		// FromMap only accepts positive widths.
		panic(err)
	}
	return lat
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.lat.Cols(), H: e.cfg.Height} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// Reset clears the history and seeds a single active centre cell.
func (e *Elementary) Reset(seed int64) {
	e.lat = e.blank()
	_ = e.lat.SetAlive(lattice.Position{Row: 0, Col: e.cfg.Width / 2})
	e.restart()
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w := e.lat.Cols()
	e.lat.Advance()
	if e.lat.Cols() != w {
		// The None boundary widened the line; old rows no longer line up.
		e.restart()
		return
	}
	copy(e.cur[w:], e.cur[:w*(e.cfg.Height-1)])
	e.line.Capture(e.lat)
	copy(e.cur[:w], e.line.Cells())
}

// Lattice exposes the underlying line.
func (e *Elementary) Lattice() *lattice.Lattice { return e.lat }

// Adopt replaces the line, e.g. with one loaded from a 0/1 file.
func (e *Elementary) Adopt(lat *lattice.Lattice) {
	e.lat = lat
	e.cfg.Width = lat.Cols()
	e.cfg.Boundary = lat.Boundary()
	e.restart()
}

// Parameters describes the line for the HUD.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.LatticeParameters(e.lat)
}

func (e *Elementary) restart() {
	w := e.lat.Cols()
	if len(e.cur) != w*e.cfg.Height {
		e.cur = make([]uint8, w*e.cfg.Height)
	}
	for i := range e.cur {
		e.cur[i] = 0
	}
	e.line.Capture(e.lat)
	copy(e.cur[:w], e.line.Cells())
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

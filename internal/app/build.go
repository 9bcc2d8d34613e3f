package app

import (
	"fmt"
	"os"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/logging"
)

// BuildLattice constructs the initial lattice the configuration describes:
// loaded from Init when set, otherwise an empty grid of Rows x Cols that is
// filled randomly when Density is positive.
func BuildLattice(c *Config) (*lattice.Lattice, error) {
	b, err := c.Boundary()
	if err != nil {
		return nil, err
	}
	opts := []lattice.Option{lattice.WithBoundary(b)}
	elementary := c.Sim == "elementary"
	if elementary {
		opts = append(opts, lattice.Elementary())
	}

	if c.Init != "" {
		l, err := loadInit(c.Init, elementary, opts)
		if err != nil {
			return nil, err
		}
		logging.Logf("loaded %dx%d grid from %s", l.Rows(), l.Cols(), c.Init)
		l.SetPopulationMode(c.Population)
		return l, nil
	}

	rows := c.Rows
	if elementary {
		rows = 1
	}
	l, err := lattice.New(rows, c.Cols, opts...)
	if err != nil {
		return nil, err
	}
	if c.Density > 0 {
		core.NewRNG(c.Seed).Populate(l, c.Density)
	}
	l.SetPopulationMode(c.Population)
	return l, nil
}

// loadInit reads an elementary 0/1 line or a "rows cols" grid file.
func loadInit(path string, elementary bool, opts []lattice.Option) (*lattice.Lattice, error) {
	if !elementary {
		return lattice.LoadFile(path, opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	l, err := lattice.LoadBits(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return l, nil
}

// LatticeSim is implemented by sims backed by a lattice.
type LatticeSim interface {
	Lattice() *lattice.Lattice
}

// Adopter is implemented by sims that can take over an existing lattice.
type Adopter interface {
	Adopt(*lattice.Lattice)
}

// BuildSim creates the configured sim around the initial lattice. With
// neither an init file nor a density the lattice would start empty, so the
// sim seeds itself from Seed instead.
func BuildSim(c *Config, l *lattice.Lattice) (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	sim := factory(c.SimConfig())
	a, ok := sim.(Adopter)
	if !ok {
		return nil, fmt.Errorf("sim %q cannot run a prepared lattice", c.Sim)
	}
	a.Adopt(l)
	if c.Init == "" && c.Density <= 0 {
		sim.Reset(c.Seed)
	}
	return sim, nil
}

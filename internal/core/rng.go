package core

import (
	"math/rand/v2"

	"lattice-ca/internal/lattice"
)

// RNG seeds random initial configurations deterministically.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Populate sets every cell of l alive with probability density.
func (r *RNG) Populate(l *lattice.Lattice, density float64) {
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			// In range by construction.
			_ = l.SetState(row, col, r.Chance(density))
		}
	}
}

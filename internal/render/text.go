package render

import (
	"fmt"
	"io"

	"lattice-ca/internal/lattice"
)

// Text writes lattice reports to a terminal stream.
type Text struct {
	// Header prefixes each report with the generation number.
	Header bool
}

// Render writes the population count or the grid, whichever the lattice's
// report mode selects.
func (t Text) Render(w io.Writer, l *lattice.Lattice) error {
	if t.Header {
		if _, err := fmt.Fprintf(w, "Generation %d (%dx%d, %s)\n", l.Generation(), l.Rows(), l.Cols(), l.Boundary()); err != nil {
			return err
		}
	}
	if l.PopulationMode() {
		_, err := fmt.Fprintf(w, "Population: %s\n", l.Report())
		return err
	}
	_, err := fmt.Fprintln(w, l.Report())
	return err
}

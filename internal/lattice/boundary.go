package lattice

import (
	"fmt"
	"strings"
)

// Boundary selects how cells on the edge of the grid see their missing
// neighbors.
type Boundary uint8

const (
	// None grows the grid wherever a live cell touches an edge and never
	// shrinks it back.
	None Boundary = iota
	// OpenCold surrounds the grid with permanently dead cells.
	OpenCold
	// OpenHot surrounds the grid with permanently alive cells.
	OpenHot
	// Periodic wraps the grid into a torus.
	Periodic
)

var boundaryNames = map[Boundary]string{
	None:     "none",
	OpenCold: "cold",
	OpenHot:  "hot",
	Periodic: "periodic",
}

// String returns the canonical flag name of the boundary.
func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return fmt.Sprintf("boundary(%d)", uint8(b))
}

// ParseBoundary accepts the canonical names plus the open0/open1 aliases used
// by `-border open 0|1`.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "noborder":
		return None, nil
	case "cold", "open0", "opencold":
		return OpenCold, nil
	case "hot", "open1", "openhot":
		return OpenHot, nil
	case "periodic", "torus":
		return Periodic, nil
	}
	return None, fmt.Errorf("unknown boundary %q", s)
}

// shrinks reports whether the padding added before a generation is removed
// again afterwards.
func (b Boundary) shrinks() bool { return b != None }

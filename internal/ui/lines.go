package ui

import "lattice-ca/internal/core"

// hudLine is one row of the HUD panel: either a group header or a
// label/value pair.
type hudLine struct {
	header bool
	label  string
	value  string
}

// layoutLines flattens a parameter snapshot into panel rows. A blank row
// separates groups.
func layoutLines(snap core.ParameterSnapshot) []hudLine {
	var lines []hudLine
	for i, group := range snap.Groups {
		if i > 0 {
			lines = append(lines, hudLine{})
		}
		lines = append(lines, hudLine{header: true, label: group.Name})
		for _, p := range group.Params {
			lines = append(lines, hudLine{label: p.Label, value: p.Value})
		}
	}
	return lines
}

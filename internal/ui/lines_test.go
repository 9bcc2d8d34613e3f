package ui

import (
	"testing"

	"lattice-ca/internal/core"

	"github.com/google/go-cmp/cmp"
)

func TestLayoutLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Label: "Rows", Value: "3"}}},
		{Name: "State", Params: []core.Parameter{{Label: "Population", Value: "2"}}},
	}}
	want := []hudLine{
		{header: true, label: "Grid"},
		{label: "Rows", value: "3"},
		{},
		{header: true, label: "State"},
		{label: "Population", value: "2"},
	}
	if diff := cmp.Diff(want, layoutLines(snap), cmp.AllowUnexported(hudLine{})); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

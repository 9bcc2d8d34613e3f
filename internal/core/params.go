package core

import (
	"strconv"

	"lattice-ca/internal/lattice"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes named choices such as the boundary policy.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that describe their state.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// LatticeParameters describes the shape and state of l.
func LatticeParameters(l *lattice.Lattice) ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Grid",
			Params: []Parameter{
				intParam("rows", "Rows", l.Rows()),
				intParam("cols", "Cols", l.Cols()),
				stringParam("border", "Border", l.Boundary().String()),
				stringParam("neighborhood", "Neighborhood", l.Neighborhood().String()),
			},
		},
		{
			Name: "State",
			Params: []Parameter{
				intParam("generation", "Generation", l.Generation()),
				intParam("population", "Population", l.Population()),
				{
					Key:   "population_mode",
					Label: "Population only",
					Type:  ParamTypeBool,
					Value: strconv.FormatBool(l.PopulationMode()),
				},
			},
		},
	}}
}

func intParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeString,
		Value: value,
	}
}

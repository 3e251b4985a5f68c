package component

import (
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// Resistor is a linear two-terminal element with no internal state.
type Resistor struct {
	ResistanceOhm float64
}

var resistorActiveTerminals = []TerminalPair{
	{I: 0, J: 0}, {I: 0, J: 1},
	{I: 1, J: 0}, {I: 1, J: 1},
}

func (Resistor) Meta() Meta {
	return Meta{
		Name:            "resistor",
		TerminalCount:   2,
		Priority:        10,
		ActiveTerminals: resistorActiveTerminals,
		Parameters:      []string{"R", "V", "I", "P"},
	}
}

// Stamp adds the 2x2 admittance block y = 1/R to the two node rows.
func (r Resistor) Stamp(sys *sparse.System, _ float64, terminals []int, _ *struct{}) {
	n1, n2 := terminals[0], terminals[1]
	y := cplx.Real(1 / r.ResistanceOhm)

	_ = sys.AddA(n1, n1, y)
	_ = sys.AddA(n1, n2, y.Neg())
	_ = sys.AddA(n2, n1, y.Neg())
	_ = sys.AddA(n2, n2, y)
}

func (Resistor) PostStamp(*sparse.System, float64, []int, *struct{}) {}

// Parameter reports R, the voltage across the resistor, the current
// through it (V/R), and the dissipated power (V^2/R).
func (r Resistor) Parameter(sys *sparse.System, terminals []int, _ *struct{}, name string) (cplx.Z, bool) {
	resistance := cplx.Real(r.ResistanceOhm)
	v := sys.VoltageAcross(terminals[0], terminals[1])

	switch name {
	case "R":
		return resistance, true
	case "V":
		return v, true
	case "I":
		return v.Div(resistance), true
	case "P":
		return v.Mul(v).Div(resistance), true
	default:
		return cplx.Zero, false
	}
}

package component

import (
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// Inductor is a companion model with conductance g_eq = dt/L and a
// history current source carrying the previous tick's current.
type Inductor struct {
	InductanceH float64
}

// InductorState holds the current through the inductor as of the end
// of the previous tick. There is no di/dt field: power is derived
// directly as V*conj(I) (see CapacitorState), so no derivative needs
// tracking between ticks.
type InductorState struct {
	IPrev cplx.Z
}

var inductorActiveTerminals = resistorActiveTerminals

func (Inductor) Meta() Meta {
	return Meta{
		Name:            "inductor",
		TerminalCount:   2,
		Priority:        10,
		ActiveTerminals: inductorActiveTerminals,
		Parameters:      []string{"L", "V", "I", "P"},
	}
}

// Stamp adds the companion conductance block and the history current
// source derived from the previous tick's current.
func (ind Inductor) Stamp(sys *sparse.System, dt float64, terminals []int, state *InductorState) {
	n1, n2 := terminals[0], terminals[1]
	gEq := cplx.Real(dt / ind.InductanceH)
	iHist := state.IPrev

	_ = sys.AddA(n1, n1, gEq)
	_ = sys.AddA(n1, n2, gEq.Neg())
	_ = sys.AddA(n2, n1, gEq.Neg())
	_ = sys.AddA(n2, n2, gEq)

	_ = sys.AddB(n1, iHist.Neg())
	_ = sys.AddB(n2, iHist)
}

// PostStamp integrates the current forward from the post-solve
// voltage: i_new = i_old + (V/L)*dt, a forward-Euler current update
// paired with the stamp's backward-Euler-style companion conductance.
func (ind Inductor) PostStamp(sys *sparse.System, dt float64, terminals []int, state *InductorState) {
	v := sys.VoltageAcross(terminals[0], terminals[1])
	state.IPrev = state.IPrev.Add(v.Scale(dt / ind.InductanceH))
}

// Parameter reports L, the present voltage, the current as of the
// start of this tick, and true complex power V*conj(I).
func (ind Inductor) Parameter(sys *sparse.System, terminals []int, state *InductorState, name string) (cplx.Z, bool) {
	v := sys.VoltageAcross(terminals[0], terminals[1])
	i := state.IPrev

	switch name {
	case "L":
		return cplx.Real(ind.InductanceH), true
	case "V":
		return v, true
	case "I":
		return i, true
	case "P":
		return v.Mul(i.Conj()), true
	default:
		return cplx.Zero, false
	}
}

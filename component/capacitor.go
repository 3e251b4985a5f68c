package component

import (
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// Capacitor is a backward-Euler companion model: each tick it behaves
// as a conductance g_eq = C/dt in parallel with a current source that
// carries the previous tick's voltage forward.
type Capacitor struct {
	CapacitanceF float64
}

// CapacitorState holds the voltage measured across the capacitor at
// the end of the previous tick, warm-starting the next stamp's
// companion source. Power is derived directly as V*conj(I), so no
// dv/dt needs tracking between ticks.
type CapacitorState struct {
	VPrev cplx.Z
}

var capacitorActiveTerminals = resistorActiveTerminals

func (Capacitor) Meta() Meta {
	return Meta{
		Name:            "capacitor",
		TerminalCount:   2,
		Priority:        10,
		ActiveTerminals: capacitorActiveTerminals,
		Parameters:      []string{"C", "V", "I", "P"},
	}
}

// Stamp adds the companion conductance block and the history current
// source derived from the previous tick's voltage.
func (c Capacitor) Stamp(sys *sparse.System, dt float64, terminals []int, state *CapacitorState) {
	n1, n2 := terminals[0], terminals[1]
	gEq := cplx.Real(c.CapacitanceF / dt)
	iHist := gEq.Mul(state.VPrev)

	_ = sys.AddA(n1, n1, gEq)
	_ = sys.AddA(n1, n2, gEq.Neg())
	_ = sys.AddA(n2, n1, gEq.Neg())
	_ = sys.AddA(n2, n2, gEq)

	_ = sys.AddB(n1, iHist)
	_ = sys.AddB(n2, iHist.Neg())
}

// PostStamp carries the solved voltage forward as next tick's v_prev.
func (Capacitor) PostStamp(sys *sparse.System, _ float64, terminals []int, state *CapacitorState) {
	state.VPrev = sys.VoltageAcross(terminals[0], terminals[1])
}

// Parameter reports C, the present voltage, the companion current
// C*v_prev, and true complex power V*conj(I).
func (c Capacitor) Parameter(sys *sparse.System, terminals []int, state *CapacitorState, name string) (cplx.Z, bool) {
	v := sys.VoltageAcross(terminals[0], terminals[1])
	i := cplx.Real(c.CapacitanceF).Mul(state.VPrev)

	switch name {
	case "C":
		return cplx.Real(c.CapacitanceF), true
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

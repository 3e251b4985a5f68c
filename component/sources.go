package component

import (
	"math"

	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

var oneTerminalActive = []TerminalPair{{I: 0, J: 0}}

// DCSource is a one-terminal Dirichlet constraint: it clears its
// node's row and rewrites it as an identity equation pinning the node
// voltage to a constant.
type DCSource struct {
	VoltageVolt float64
}

func (DCSource) Meta() Meta {
	return Meta{
		Name:            "dc-source-1-terminal",
		TerminalCount:   1,
		Priority:        25,
		ActiveTerminals: oneTerminalActive,
		Parameters:      []string{"V"},
	}
}

func (d DCSource) Stamp(sys *sparse.System, _ float64, terminals []int, _ *struct{}) {
	n := terminals[0]
	_ = sys.ClearRow(n)
	_ = sys.AddA(n, n, cplx.One)
	_ = sys.SetB(n, cplx.Real(d.VoltageVolt))
}

func (DCSource) PostStamp(*sparse.System, float64, []int, *struct{}) {}

func (d DCSource) Parameter(_ *sparse.System, _ []int, _ *struct{}, name string) (cplx.Z, bool) {
	if name == "V" {
		return cplx.Real(d.VoltageVolt), true
	}

	return cplx.Zero, false
}

// Ground is a one-terminal Dirichlet constraint pinning its node to
// zero. It publishes no parameters.
type Ground struct{}

func (Ground) Meta() Meta {
	return Meta{
		Name:            "ground",
		TerminalCount:   1,
		Priority:        25,
		ActiveTerminals: oneTerminalActive,
	}
}

func (Ground) Stamp(sys *sparse.System, _ float64, terminals []int, _ *struct{}) {
	n := terminals[0]
	_ = sys.ClearRow(n)
	_ = sys.AddA(n, n, cplx.One)
	_ = sys.SetB(n, cplx.Zero)
}

func (Ground) PostStamp(*sparse.System, float64, []int, *struct{}) {}

func (Ground) Parameter(*sparse.System, []int, *struct{}, string) (cplx.Z, bool) {
	return cplx.Zero, false
}

// ACSource is a one-terminal Dirichlet constraint driving its node
// with a sinusoid; state tracks elapsed simulation time so the stamp
// phase can evaluate the waveform without depending on an external
// clock.
type ACSource struct {
	AmplitudeVolt float64
	FrequencyHz   float64
	PhaseRad      float64
}

func (ACSource) Meta() Meta {
	return Meta{
		Name:            "ac-source-1-terminal",
		TerminalCount:   1,
		Priority:        25,
		ActiveTerminals: oneTerminalActive,
		Parameters:      []string{"V", "f", "phi", "t"},
	}
}

func (a ACSource) Stamp(sys *sparse.System, _ float64, terminals []int, state *float64) {
	n := terminals[0]
	_ = sys.ClearRow(n)
	_ = sys.AddA(n, n, cplx.One)

	angle := 2*math.Pi*a.FrequencyHz*(*state) + a.PhaseRad
	_ = sys.SetB(n, cplx.Polar(a.AmplitudeVolt, angle))
}

// PostStamp advances the source's internal clock by one timestep.
func (ACSource) PostStamp(_ *sparse.System, dt float64, _ []int, state *float64) {
	*state += dt
}

func (a ACSource) Parameter(_ *sparse.System, _ []int, state *float64, name string) (cplx.Z, bool) {
	switch name {
	case "V":
		return cplx.Real(a.AmplitudeVolt), true
	case "f":
		return cplx.Real(a.FrequencyHz), true
	case "phi":
		return cplx.Real(a.PhaseRad), true
	case "t":
		return cplx.Real(*state), true
	default:
		return cplx.Zero, false
	}
}

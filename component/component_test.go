package component_test

import (
	"testing"

	"github.com/nodewave/circsim/component"
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
	"github.com/stretchr/testify/require"
)

// reserve builds a System with coordinates for the given component's
// ActiveTerminals mapped onto the supplied global terminal indices.
func reserve(meta component.Meta, terminals []int) *sparse.System {
	coords := make([]sparse.Coord, 0, len(meta.ActiveTerminals))
	for _, pair := range meta.ActiveTerminals {
		coords = append(coords, sparse.Coord{Row: terminals[pair.I], Col: terminals[pair.J]})
	}

	return sparse.FromCoordinates(coords)
}

func TestResistor_StampAndParameters(t *testing.T) {
	t.Parallel()

	r := component.Resistor{ResistanceOhm: 100}
	terminals := []int{0, 1}
	sys := reserve(r.Meta(), terminals)

	var state struct{}
	r.Stamp(sys, 0.01, terminals, &state)

	require.InDelta(t, 0.01, sys.Values()[sys.RowPointers()[0]].Re, 1e-12)

	sys.SetX([]cplx.Z{cplx.New(10, 0), cplx.New(0, 0)})

	v, ok := r.Parameter(sys, terminals, &state, "V")
	require.True(t, ok)
	require.Equal(t, cplx.New(10, 0), v)

	i, ok := r.Parameter(sys, terminals, &state, "I")
	require.True(t, ok)
	require.InDelta(t, 0.1, i.Re, 1e-12)

	p, ok := r.Parameter(sys, terminals, &state, "P")
	require.True(t, ok)
	require.InDelta(t, 1.0, p.Re, 1e-12)

	_, ok = r.Parameter(sys, terminals, &state, "nope")
	require.False(t, ok)
}

func TestCapacitor_CompanionModelAndPostStamp(t *testing.T) {
	t.Parallel()

	c := component.Capacitor{CapacitanceF: 1e-6}
	terminals := []int{0, 1}
	sys := reserve(c.Meta(), terminals)

	state := component.CapacitorState{}
	dt := 0.01

	c.Stamp(sys, dt, terminals, &state)
	gEq := c.CapacitanceF / dt
	require.InDelta(t, gEq, sys.Values()[sys.RowPointers()[0]].Re, 1e-9)
	require.Equal(t, cplx.Zero, sys.B()[0]) // v_prev starts zero

	sys.SetX([]cplx.Z{cplx.New(2, 0), cplx.New(0, 0)})
	c.PostStamp(sys, dt, terminals, &state)
	require.Equal(t, cplx.New(2, 0), state.VPrev)

	sys.Reset()
	c.Stamp(sys, dt, terminals, &state)
	require.InDelta(t, gEq*2, sys.B()[0].Re, 1e-9)
}

func TestInductor_ForwardEulerIntegration(t *testing.T) {
	t.Parallel()

	ind := component.Inductor{InductanceH: 1e-3}
	terminals := []int{0, 1}
	sys := reserve(ind.Meta(), terminals)

	state := component.InductorState{}
	dt := 0.01

	ind.Stamp(sys, dt, terminals, &state)
	sys.SetX([]cplx.Z{cplx.New(1, 0), cplx.New(0, 0)})
	ind.PostStamp(sys, dt, terminals, &state)

	expected := dt / ind.InductanceH // (1V / L) * dt
	require.InDelta(t, expected, state.IPrev.Re, 1e-9)
}

func TestDCSource_ClearsRowAndPinsVoltage(t *testing.T) {
	t.Parallel()

	d := component.DCSource{VoltageVolt: 5}
	terminals := []int{0}
	sys := reserve(d.Meta(), terminals)

	// Pollute the row first, as a passive component stamping earlier would.
	require.NoError(t, sys.AddA(0, 0, cplx.New(99, 0)))

	var state struct{}
	d.Stamp(sys, 0.01, terminals, &state)

	require.Equal(t, cplx.One, sys.Values()[0])
	require.Equal(t, cplx.New(5, 0), sys.B()[0])

	v, ok := d.Parameter(sys, terminals, &state, "V")
	require.True(t, ok)
	require.Equal(t, cplx.New(5, 0), v)
}

func TestGround_PinsZeroAndPublishesNoParameters(t *testing.T) {
	t.Parallel()

	g := component.Ground{}
	terminals := []int{0}
	sys := reserve(g.Meta(), terminals)

	var state struct{}
	g.Stamp(sys, 0.01, terminals, &state)

	require.Equal(t, cplx.One, sys.Values()[0])
	require.Equal(t, cplx.Zero, sys.B()[0])

	_, ok := g.Parameter(sys, terminals, &state, "V")
	require.False(t, ok)
}

func TestACSource_WaveformAndClockAdvance(t *testing.T) {
	t.Parallel()

	a := component.ACSource{AmplitudeVolt: 1, FrequencyHz: 50, PhaseRad: 0}
	terminals := []int{0}
	sys := reserve(a.Meta(), terminals)

	state := 0.0
	a.Stamp(sys, 0.01, terminals, &state)
	require.InDelta(t, 1.0, sys.B()[0].Re, 1e-9)
	require.InDelta(t, 0.0, sys.B()[0].Im, 1e-9)

	a.PostStamp(sys, 0.01, terminals, &state)
	require.InDelta(t, 0.01, state, 1e-12)

	f, ok := a.Parameter(sys, terminals, &state, "f")
	require.True(t, ok)
	require.Equal(t, cplx.New(50, 0), f)
}

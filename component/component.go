package component

import (
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// TerminalPair names a pair of local terminal indices a component's
// stamp touches. ActiveTerminals lists every such pair statically, so
// the circuit assembler can reserve sparse coordinates before any tick
// runs (see sparse.System.AddCoordinates).
type TerminalPair struct {
	I, J int
}

// Meta describes a component type's shape: how many terminals it
// takes, which local terminal pairs its stamp writes into A, the
// priority it stamps at, and which parameter names it publishes.
type Meta struct {
	Name            string
	TerminalCount   int
	Priority        int
	ActiveTerminals []TerminalPair
	Parameters      []string
}

// Component is the contract every circuit element implements. S is
// the component's per-instance state — struct{} for stateless
// components (Resistor, DCSource, Ground), a single field for the
// reactive elements (Capacitor, Inductor), elapsed time for ACSource.
//
// terminals is the instance's global node indices, in declaration
// order; a TerminalPair{I,J} in Meta.ActiveTerminals addresses
// terminals[I] and terminals[J].
type Component[S any] interface {
	// Meta returns this component type's static shape.
	Meta() Meta

	// Stamp adds this instance's contribution to sys's A and b. Must
	// only touch coordinates named by Meta().ActiveTerminals and must
	// not read or write sys's solution vector x.
	Stamp(sys *sparse.System, dt float64, terminals []int, state *S)

	// PostStamp runs once per tick after the solve, and may read x via
	// sys.VoltageAcross/sys.Current to update state. The default
	// no-op is satisfied by embedding NoPostStamp.
	PostStamp(sys *sparse.System, dt float64, terminals []int, state *S)

	// Parameter returns the named parameter's value and true, or the
	// zero value and false if this component does not publish it.
	Parameter(sys *sparse.System, terminals []int, state *S, name string) (cplx.Z, bool)
}

// NoPostStamp can be embedded by components with no post-stamp
// behavior, satisfying Component's PostStamp method with a no-op.
type NoPostStamp[S any] struct{}

func (NoPostStamp[S]) PostStamp(*sparse.System, float64, []int, *S) {}

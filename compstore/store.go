package compstore

import (
	"github.com/nodewave/circsim/component"
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// Store holds every instance of one component type: the components
// themselves, their per-instance state, and their flattened terminal
// indices, each in a dense slice indexed by instance order.
type Store[C component.Component[S], S any] struct {
	meta          component.Meta
	components    []C
	states        []S
	terminals     []int // flattened, meta.TerminalCount per instance
	terminalCount int
}

// New creates an empty Store for component type C with state S. meta
// is taken from a zero-value C's Meta(), since Meta is static over a
// type, not an instance.
func New[C component.Component[S], S any]() *Store[C, S] {
	var zero C

	return &Store[C, S]{
		meta:          zero.Meta(),
		terminalCount: zero.Meta().TerminalCount,
	}
}

// Meta returns the component type's static shape.
func (st *Store[C, S]) Meta() component.Meta { return st.meta }

// Len returns the number of instances pushed so far.
func (st *Store[C, S]) Len() int { return len(st.components) }

// Push appends one component instance with its initial (zero-value)
// state and its global terminal indices. Returns the new instance's
// index, used by the circuit assembler to record a name.
func (st *Store[C, S]) Push(c C, terminals []int) (int, error) {
	if len(terminals) != st.terminalCount {
		return 0, storeErrorf("Push", ErrTerminalCountMismatch)
	}

	idx := len(st.components)
	st.components = append(st.components, c)
	st.states = append(st.states, *new(S))
	st.terminals = append(st.terminals, terminals...)

	return idx, nil
}

// terminalsFor returns instance i's global terminal indices.
func (st *Store[C, S]) terminalsFor(i int) []int {
	start := i * st.terminalCount
	end := start + st.terminalCount

	return st.terminals[start:end]
}

// StampAll invokes Stamp on every instance in push order.
func (st *Store[C, S]) StampAll(sys *sparse.System, dt float64) {
	for i := range st.components {
		st.components[i].Stamp(sys, dt, st.terminalsFor(i), &st.states[i])
	}
}

// PostStampAll invokes PostStamp on every instance in push order.
func (st *Store[C, S]) PostStampAll(sys *sparse.System, dt float64) {
	for i := range st.components {
		st.components[i].PostStamp(sys, dt, st.terminalsFor(i), &st.states[i])
	}
}

// Parameter invokes instance i's parameter query. Returns false if i
// is out of range or the component does not publish name.
func (st *Store[C, S]) Parameter(i int, sys *sparse.System, name string) (cplx.Z, bool) {
	if i < 0 || i >= len(st.components) {
		return cplx.Zero, false
	}

	return st.components[i].Parameter(sys, st.terminalsFor(i), &st.states[i], name)
}

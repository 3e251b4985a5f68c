package circuit

import (
	"reflect"
	"sort"

	"github.com/nodewave/circsim/component"
	"github.com/nodewave/circsim/compstore"
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/solver"
	"github.com/nodewave/circsim/sparse"
)

// probeLocator resolves a named instance to its store and index.
type probeLocator struct {
	typ   reflect.Type
	index int
}

// Circuit owns the shared linear system, one store per component
// type, and a name-to-instance index for probing. It is the sole
// owner of all component state: components never read or mutate one
// another's state.
type Circuit struct {
	sys    *sparse.System
	solver *solver.Solver

	stores map[reflect.Type]typedStore
	order  []reflect.Type // first-registration order, for stable priority sort

	names      map[string]probeLocator
	lastReport solver.Report
}

// New creates an empty Circuit. The linear system starts at dimension
// zero and grows as components are placed.
func New(opts ...solver.Option) *Circuit {
	return &Circuit{
		sys:    sparse.FromCoordinates(nil),
		solver: solver.New(opts...),
		stores: make(map[reflect.Type]typedStore),
		names:  make(map[string]probeLocator),
	}
}

// Place registers one instance of component type C (with state S)
// at the given global terminal indices, reserving its sparsity
// coordinates in the shared system. If name is non-empty, the
// instance becomes probeable under that name.
//
// Place is a package-level function, not a method, because Go does
// not allow a method to introduce type parameters beyond its
// receiver's.
func Place[C component.Component[S], S any](circ *Circuit, c C, terminals []int, name string) error {
	meta := c.Meta()
	if len(terminals) != meta.TerminalCount {
		return circuitErrorf("Place", name, ErrTerminalCountMismatch)
	}

	if name != "" {
		if _, exists := circ.names[name]; exists {
			return circuitErrorf("Place", name, ErrDuplicateComponentName)
		}
	}

	coords := make([]sparse.Coord, 0, len(meta.ActiveTerminals))
	for _, pair := range meta.ActiveTerminals {
		coords = append(coords, sparse.Coord{Row: terminals[pair.I], Col: terminals[pair.J]})
	}
	circ.sys.AddCoordinates(coords)

	typ := reflect.TypeOf(c)

	raw, ok := circ.stores[typ]
	if !ok {
		newStore := compstore.New[C, S]()
		circ.stores[typ] = newStore
		circ.order = append(circ.order, typ)
		raw = newStore
	}

	store, ok := raw.(*compstore.Store[C, S])
	if !ok {
		// Two distinct component types produced the same reflect.Type,
		// which cannot happen for concrete Go types — this would only
		// fire on a programming error in how Place is instantiated.
		return circuitErrorf("Place", name, compstore.ErrTypeMismatch)
	}

	idx, err := store.Push(c, terminals)
	if err != nil {
		return circuitErrorf("Place", name, err)
	}

	if name != "" {
		circ.names[name] = probeLocator{typ: typ, index: idx}
	}

	return nil
}

// sortedTypes returns the registered component types ordered by
// ascending Meta().Priority, ties broken by first-registration order.
func (circ *Circuit) sortedTypes() []reflect.Type {
	sorted := append([]reflect.Type(nil), circ.order...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return circ.stores[sorted[i]].Meta().Priority < circ.stores[sorted[j]].Meta().Priority
	})

	return sorted
}

// Step runs one simulation tick: reset, stamp every component type in
// priority order, solve, then post-stamp every component type in the
// same priority order.
func (circ *Circuit) Step(dt float64) {
	circ.sys.Reset()

	types := circ.sortedTypes()

	for _, typ := range types {
		circ.stores[typ].StampAll(circ.sys, dt)
	}

	circ.lastReport = circ.solver.Solve(circ.sys)

	for _, typ := range types {
		circ.stores[typ].PostStampAll(circ.sys, dt)
	}
}

// Probe looks up a named instance's parameter. The bool result is
// false both when the name is unknown and when the component does
// not publish that parameter — both cases are not-present, never an
// error.
func (circ *Circuit) Probe(name, parameter string) (cplx.Z, bool) {
	loc, ok := circ.names[name]
	if !ok {
		return cplx.Zero, false
	}

	return circ.stores[loc.typ].Parameter(loc.index, circ.sys, parameter)
}

// LastReport returns the solver's diagnostics from the most recent
// Step. Non-convergence is never surfaced as an error by Step itself;
// a caller that cares can inspect this.
func (circ *Circuit) LastReport() solver.Report {
	return circ.lastReport
}

// N returns the assembled system's current dimension.
func (circ *Circuit) N() int {
	return circ.sys.N()
}

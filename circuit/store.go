package circuit

import (
	"github.com/nodewave/circsim/component"
	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// typedStore is the type-erased view the circuit holds one of per
// placed component type. compstore.Store[C, S] satisfies it
// structurally — no explicit implements declaration is needed.
type typedStore interface {
	Meta() component.Meta
	StampAll(sys *sparse.System, dt float64)
	PostStampAll(sys *sparse.System, dt float64)
	Parameter(i int, sys *sparse.System, name string) (cplx.Z, bool)
	Len() int
}

// Package compstore implements a type-homogeneous component store:
// one Store per component type, holding that type's instances,
// per-instance state, and per-instance terminal indices in flat
// slices.
//
// A Store[C, S] is monomorphized once per (component type, state
// type) pair actually used, giving dense, cache-friendly storage with
// no dynamic dispatch per instance. The circuit package holds these
// behind a small typedStore interface keyed by reflect.Type, so
// stamping all component types in priority order costs one interface
// call per type, not per instance.
package compstore

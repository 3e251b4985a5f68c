// Package circuit assembles placed components into a single sparse
// system and drives the per-tick reset/stamp/solve/post-stamp
// sequence.
//
// Stores are kept one per component type, alongside a map from
// instance name to a stable locator for probing, sharing one linear
// system across every type. Stores are sorted by priority (ascending)
// before every stamp and post-stamp pass, breaking ties by
// first-registration order, so a component that depends on another's
// row (a Dirichlet source overriding a passive element's admittance,
// say) always sees it written in the right order.
package circuit

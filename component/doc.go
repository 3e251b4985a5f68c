// Package component defines the contract every circuit element
// implements (Stamp, PostStamp, Parameter) and the concrete component
// library: Resistor, Capacitor, Inductor, DCSource, ACSource, and
// Ground.
//
// A component type is generic over its own per-instance state S — a
// Resistor carries no state (S = struct{}), a Capacitor carries the
// previous-tick voltage, an Inductor the previous-tick current, an
// ACSource the elapsed simulation time. The generic parameter lets
// compstore.Store hold each type's state in a flat, type-homogeneous
// slice rather than behind an interface.
package component

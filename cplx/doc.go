// Package cplx defines the complex scalar used throughout circsim.
//
// Every node voltage, branch current, and component parameter the
// simulator reports is a Z: a plain (Re, Im float64) pair with the
// small set of arithmetic operations the numerical core needs. It
// intentionally does not alias Go's built-in complex128 — keeping the
// pair explicit matches the invariant that all circuit-visible numeric
// values are this one type, not the language's native complex kind.
package cplx

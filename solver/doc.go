// Package solver implements BiCGSTAB (biconjugate gradient stabilized),
// the iterative Krylov method used to solve the sparse complex system
// A·x = b once per simulation timestep.
//
// A Solver is warm-started: it reuses the caller-supplied x as the
// initial guess, so that a tick's solve typically needs only a handful
// of iterations when the previous timestep's solution is close to the
// new one. Working vectors (r, p, s, Ap, As, rNew) are allocated once
// per Solver and reused across calls to Solve — sized to the system's
// N, never reallocated mid-run.
//
// Complexity: O(nnz + N) per iteration, up to Config.MaxIters
// iterations.
package solver

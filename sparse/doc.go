// Package sparse implements the fixed-sparsity complex linear system
// stamped and solved once per simulation timestep.
//
// A System stores a sparse N×N complex matrix A in compressed-row form
// (column_indices/row_pointers/a, plus a coordinate→index map built once
// at assembly time) alongside dense right-hand-side b and solution x
// vectors. Sparsity is frozen after System construction: every (row,
// col) pair a component will ever stamp must be reserved up front, so
// that per-tick stamping is an O(1) map lookup followed by an array
// write, never an allocation.
//
// Complexity:
//
//	Construction from coordinates: O(k log k) for k reserved pairs.
//	AddA/SetB/AddB/ClearRow/VoltageAcross/Current: O(1) (ClearRow: O(row
//	width)).
//	Reset: O(nnz + N).
package sparse

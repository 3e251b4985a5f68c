package sparse

import "github.com/nodewave/circsim/cplx"

// AddA accumulates value into A[row, col]. The coordinate must have
// been reserved at construction time (via FromCoordinates or
// AddCoordinates); otherwise this returns ErrUnreservedCoordinate
// wrapping the offending coordinate.
// Complexity: O(1).
func (s *System) AddA(row, col int, value cplx.Z) error {
	k, ok := s.coordMap[Coord{Row: row, Col: col}]
	if !ok {
		return sparseErrorf("AddA", row, col, ErrUnreservedCoordinate)
	}

	s.a[k] = s.a[k].Add(value)

	return nil
}

// SetB assigns b[i] = value.
// Complexity: O(1).
func (s *System) SetB(i int, value cplx.Z) error {
	if i < 0 || i >= len(s.b) {
		return sparseErrorf("SetB", i, -1, ErrIndexOutOfRange)
	}

	s.b[i] = value

	return nil
}

// AddB accumulates value into b[i].
// Complexity: O(1).
func (s *System) AddB(i int, value cplx.Z) error {
	if i < 0 || i >= len(s.b) {
		return sparseErrorf("AddB", i, -1, ErrIndexOutOfRange)
	}

	s.b[i] = s.b[i].Add(value)

	return nil
}

// ClearRow zeroes every stored a[k] belonging to row i. b is left
// untouched — callers that want a Dirichlet row also call SetB
// themselves (this is what DC/AC sources and Ground do).
// Complexity: O(row width).
func (s *System) ClearRow(i int) error {
	if i < 0 || i >= s.N() {
		return sparseErrorf("ClearRow", i, -1, ErrIndexOutOfRange)
	}

	for k := s.rowPointers[i]; k < s.rowPointers[i+1]; k++ {
		s.a[k] = cplx.Zero
	}

	return nil
}

// Reset zeroes all of a and b, preserving the sparsity pattern and the
// solution x (warm start across ticks).
// Complexity: O(nnz + N).
func (s *System) Reset() {
	for k := range s.a {
		s.a[k] = cplx.Zero
	}
	for i := range s.b {
		s.b[i] = cplx.Zero
	}
}

// VoltageAcross returns x[from] - x[to].
// Complexity: O(1).
func (s *System) VoltageAcross(from, to int) cplx.Z {
	return s.x[from].Sub(s.x[to])
}

// Current returns b[i] (the current source term probes read back
// after a solve).
// Complexity: O(1).
func (s *System) Current(i int) cplx.Z {
	return s.b[i]
}

// X returns the current solution vector. The returned slice aliases
// internal storage and must not be mutated by callers.
// Complexity: O(1).
func (s *System) X() []cplx.Z {
	return s.x
}

// B returns the current right-hand side. The returned slice aliases
// internal storage and must not be mutated by callers.
// Complexity: O(1).
func (s *System) B() []cplx.Z {
	return s.b
}

// RowPointers, ColumnIndices and Values expose the raw CSR storage for
// the solver package's sparse matrix-vector product. They alias
// internal state and must be treated as read-only outside sparse and
// solver.
func (s *System) RowPointers() []int   { return s.rowPointers }
func (s *System) ColumnIndices() []int { return s.columnIndices }
func (s *System) Values() []cplx.Z     { return s.a }

// SetX overwrites the solution vector, e.g. after an external solve.
// Complexity: O(N).
func (s *System) SetX(x []cplx.Z) {
	copy(s.x, x)
}

package sparse

import (
	"sort"

	"github.com/nodewave/circsim/cplx"
)

// Coord identifies a single (row, col) matrix entry to reserve.
type Coord struct {
	Row int
	Col int
}

// System is a sparse N×N complex matrix A in compressed-row storage,
// paired with dense right-hand-side b and solution x vectors of
// length N. Sparsity is fixed once built: AddA only ever writes into
// coordinates reserved at construction time.
type System struct {
	columnIndices []int         // column of the k-th stored value
	rowPointers   []int         // row i owns columnIndices/a[rowPointers[i]:rowPointers[i+1]]
	a             []cplx.Z      // stored nonzero values, length nnz
	coordMap      map[Coord]int // (row,col) -> index into columnIndices/a
	b             []cplx.Z      // right-hand side, length N
	x             []cplx.Z      // solution, length N (warm-started across ticks)
}

// N returns the system's dimension.
// Complexity: O(1).
func (s *System) N() int {
	return len(s.b)
}

// NNZ returns the number of stored (reserved) entries.
// Complexity: O(1).
func (s *System) NNZ() int {
	return len(s.a)
}

// FromCoordinates builds a System whose sparsity pattern is exactly
// the set of distinct (row, col) pairs in coords. N is taken as
// max(row, col)+1 over all pairs. Within each row, stored columns are
// sorted ascending and repeated coordinates are coalesced to one
// stored entry.
// Complexity: O(k log k) for k input coordinates (insertion sort per
// row; rows are small in practice — a handful of terminals each).
func FromCoordinates(coords []Coord) *System {
	return buildFromPairs(coords)
}

func buildFromPairs(coords []Coord) *System {
	rows := map[int][]int{} // row -> unsorted columns (may repeat)
	maxRow, maxCol := -1, -1

	for _, c := range coords {
		rows[c.Row] = append(rows[c.Row], c.Col)
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}

	n := maxRow + 1
	if maxCol+1 > n {
		n = maxCol + 1
	}
	if n < 0 {
		n = 0
	}

	s := &System{
		rowPointers: make([]int, n+1),
		coordMap:    make(map[Coord]int),
	}

	for i := 0; i < n; i++ {
		s.rowPointers[i] = len(s.columnIndices)

		cols := rows[i]
		sort.Ints(cols)

		first := true
		prev := 0
		for _, col := range cols {
			if !first && col == prev {
				continue // coalesce repeated coordinate
			}
			first = false
			prev = col

			s.coordMap[Coord{Row: i, Col: col}] = len(s.columnIndices)
			s.columnIndices = append(s.columnIndices, col)
		}
	}
	s.rowPointers[n] = len(s.columnIndices)

	s.a = make([]cplx.Z, len(s.columnIndices))
	s.b = make([]cplx.Z, n)
	s.x = make([]cplx.Z, n)

	return s
}

// AddCoordinates rebuilds the system to include the union of its
// existing reserved coordinates and the new ones. Values already
// stored in a are dropped by the rebuild — acceptable because this is
// only ever called during assembly, before any tick has stamped real
// data. The warm-start solution x is carried over for indices that
// still exist after growth.
// Complexity: O((k_old + k_new) log(...)).
func (s *System) AddCoordinates(coords []Coord) {
	existing := make([]Coord, 0, len(s.columnIndices)+len(coords))
	for row := 0; row < s.N(); row++ {
		for k := s.rowPointers[row]; k < s.rowPointers[row+1]; k++ {
			existing = append(existing, Coord{Row: row, Col: s.columnIndices[k]})
		}
	}
	existing = append(existing, coords...)

	oldX := s.x
	rebuilt := buildFromPairs(existing)

	n := rebuilt.N()
	for i := 0; i < n && i < len(oldX); i++ {
		rebuilt.x[i] = oldX[i]
	}

	*s = *rebuilt
}

package solver_test

import (
	"testing"

	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/solver"
	"github.com/nodewave/circsim/sparse"
	"github.com/stretchr/testify/require"
)

func TestSolve_DiagonalSystem(t *testing.T) {
	t.Parallel()

	coords := []sparse.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	sys := sparse.FromCoordinates(coords)
	require.NoError(t, sys.AddA(0, 0, cplx.New(2, 0)))
	require.NoError(t, sys.AddA(1, 1, cplx.New(4, 0)))
	require.NoError(t, sys.AddA(2, 2, cplx.New(5, 0)))
	require.NoError(t, sys.SetB(0, cplx.New(4, 0)))
	require.NoError(t, sys.SetB(1, cplx.New(8, 0)))
	require.NoError(t, sys.SetB(2, cplx.New(10, 0)))

	sv := solver.New()
	report := sv.Solve(sys)

	require.True(t, report.Converged)
	require.InDelta(t, 2.0, sys.X()[0].Re, 1e-6)
	require.InDelta(t, 2.0, sys.X()[1].Re, 1e-6)
	require.InDelta(t, 2.0, sys.X()[2].Re, 1e-6)
}

func TestSolve_ComplexSystem(t *testing.T) {
	t.Parallel()

	coords := []sparse.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	}
	sys := sparse.FromCoordinates(coords)

	require.NoError(t, sys.AddA(0, 0, cplx.New(3, 1)))
	require.NoError(t, sys.AddA(0, 1, cplx.New(1, 0)))
	require.NoError(t, sys.AddA(1, 0, cplx.New(1, 0)))
	require.NoError(t, sys.AddA(1, 1, cplx.New(4, -1)))
	require.NoError(t, sys.SetB(0, cplx.New(5, 2)))
	require.NoError(t, sys.SetB(1, cplx.New(3, -3)))

	sv := solver.New(solver.WithTol(1e-9), solver.WithMaxIters(200))
	report := sv.Solve(sys)

	require.True(t, report.Converged)

	// Residual check: A*x should reproduce b within tolerance.
	residual := sparse.MatVec(sys.Values(), sys.ColumnIndices(), sys.RowPointers(), sys.X())
	for i := range residual {
		require.InDelta(t, sys.B()[i].Re, residual[i].Re, 1e-6)
		require.InDelta(t, sys.B()[i].Im, residual[i].Im, 1e-6)
	}
}

func TestSolve_WarmStartReusesPriorX(t *testing.T) {
	t.Parallel()

	coords := []sparse.Coord{{Row: 0, Col: 0}}
	sys := sparse.FromCoordinates(coords)
	require.NoError(t, sys.AddA(0, 0, cplx.New(1, 0)))
	require.NoError(t, sys.SetB(0, cplx.New(1, 0)))

	sv := solver.New()
	first := sv.Solve(sys)
	require.True(t, first.Converged)

	// Nudge b slightly and re-solve; warm start should still converge.
	require.NoError(t, sys.AddB(0, cplx.New(1e-9, 0)))
	second := sv.Solve(sys)
	require.True(t, second.Converged)
	require.LessOrEqual(t, second.Iterations, first.Iterations+1)
}

func TestSolve_LargeDiagonallyDominantSystem(t *testing.T) {
	t.Parallel()

	const n = 500

	coords := make([]sparse.Coord, 0, n*3)
	for i := 0; i < n; i++ {
		coords = append(coords, sparse.Coord{Row: i, Col: i})
		if i > 0 {
			coords = append(coords, sparse.Coord{Row: i, Col: i - 1})
		}
		if i < n-1 {
			coords = append(coords, sparse.Coord{Row: i, Col: i + 1})
		}
	}
	sys := sparse.FromCoordinates(coords)

	for i := 0; i < n; i++ {
		require.NoError(t, sys.AddA(i, i, cplx.New(10, 1)))
		if i > 0 {
			require.NoError(t, sys.AddA(i, i-1, cplx.New(1, 0.5)))
		}
		if i < n-1 {
			require.NoError(t, sys.AddA(i, i+1, cplx.New(1, -0.5)))
		}
		require.NoError(t, sys.SetB(i, cplx.New(float64(i%7+1), float64(i%3))))
	}

	sv := solver.New(solver.WithMaxIters(100), solver.WithTol(1e-6))
	report := sv.Solve(sys)

	require.True(t, report.Converged)
	require.LessOrEqual(t, report.Iterations, 100)
	require.Less(t, report.Residual, 1e-6)
}

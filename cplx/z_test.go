package cplx_test

import (
	"math"
	"testing"

	"github.com/nodewave/circsim/cplx"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := cplx.New(3, 4)
	b := cplx.New(1, -2)

	require.Equal(t, cplx.New(4, 2), a.Add(b))
	require.Equal(t, cplx.New(2, 6), a.Sub(b))
	require.Equal(t, cplx.New(3*1-4*-2, 3*-2+4*1), a.Mul(b))
	require.Equal(t, cplx.New(-3, -4), a.Neg())
	require.Equal(t, cplx.New(3, -4), a.Conj())
}

func TestDiv(t *testing.T) {
	t.Parallel()

	a := cplx.New(4, 2)
	b := cplx.New(2, 0)

	got := a.Div(b)
	require.InDelta(t, 2.0, got.Re, 1e-12)
	require.InDelta(t, 1.0, got.Im, 1e-12)
}

func TestPolarNormArg(t *testing.T) {
	t.Parallel()

	z := cplx.Polar(2, math.Pi/2)
	require.InDelta(t, 0.0, z.Re, 1e-9)
	require.InDelta(t, 2.0, z.Im, 1e-9)
	require.InDelta(t, 2.0, z.Norm(), 1e-9)
	require.InDelta(t, math.Pi/2, z.Arg(), 1e-9)
}

func TestZeroOneIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, cplx.Zero.IsZero())
	require.False(t, cplx.One.IsZero())
	require.Equal(t, cplx.Real(1), cplx.One)
}

func TestScale(t *testing.T) {
	t.Parallel()

	z := cplx.New(1, -1)
	require.Equal(t, cplx.New(2, -2), z.Scale(2))
}

// SPDX-License-Identifier: MIT
package lu_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/lu"
	"github.com/katalvlaran/lvlsolve/mat"
	"github.com/stretchr/testify/require"
)

const eps = 1e-10

func mustDense(t *testing.T, n int, data []float64) *mat.Dense {
	t.Helper()
	d, err := mat.NewDense(n, n, data)
	require.NoError(t, err)

	return d
}

func requireMatrixDelta(t *testing.T, want, got mat.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, wv, gv, eps, "at (%d,%d)", i, j)
		}
	}
}

func TestGeneral_FactorizesAndReconstructs(t *testing.T) {
	a := mustDense(t, 3, []float64{
		2, 1, 1,
		4, 3, 3,
		8, 7, 9,
	})

	sol, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Same(t, mat.Matrix(a), sol.Target())

	// P·L·D·U must reproduce the target.
	prod, err := mat.Mul(sol.P(), sol.L(), sol.D(), sol.U())
	require.NoError(t, err)
	requireMatrixDelta(t, a, prod)

	require.Equal(t, 1, sol.SignOfDeterminant())
	require.InDelta(t, math.Log(4), sol.LogAbsDeterminant(), eps)
	require.InDelta(t, 4.0, sol.Determinant().Value(), eps)
}

func TestGeneral_InverseAndSolve(t *testing.T) {
	a := mustDense(t, 3, []float64{
		2, 1, 1,
		4, 3, 3,
		8, 7, 9,
	})

	sol, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)

	inv := sol.Inverse()
	require.Same(t, inv, sol.Inverse()) // derived once, cached

	prod, err := mat.Mul(a, inv)
	require.NoError(t, err)
	ident, err := mat.NewDiagonal([]float64{1, 1, 1})
	require.NoError(t, err)
	requireMatrixDelta(t, ident, prod)

	x, err := sol.Solve([]float64{4, 10, 24})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, x[i], eps)
	}

	_, err = sol.Solve([]float64{1, 2})
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestGeneral_PivotingFlipsSign(t *testing.T) {
	a := mustDense(t, 2, []float64{
		0, 1,
		1, 0,
	})

	sol, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok) // pivoting rescues the zero leading entry
	require.Equal(t, -1, sol.SignOfDeterminant())
	require.InDelta(t, 0.0, sol.LogAbsDeterminant(), eps)
}

func TestGeneral_SingularReturnsAbsent(t *testing.T) {
	a := mustDense(t, 3, []float64{
		1, 2, 3,
		2, 4, 6, // proportional to row 0
		1, 0, 1,
	})

	sol, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestGeneral_ZeroMatrixReturnsAbsent(t *testing.T) {
	a := mustDense(t, 2, []float64{0, 0, 0, 0})

	sol, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestGeneral_DenormalScaleUnderflowsToAbsent(t *testing.T) {
	// Every pivot of the norm-scaled copy clears the threshold, but
	// multiplying the trailing pivot back by the denormal norm
	// underflows it to zero. The result must be absent, not a solver
	// carrying a singular D.
	tiny := math.SmallestNonzeroFloat64
	a := mustDense(t, 2, []float64{
		2024 * tiny, 402 * tiny,
		402 * tiny, 80 * tiny,
	})

	sol, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestGeneral_StructuralRejection(t *testing.T) {
	_, _, err := lu.General.Apply(nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)

	rect, err := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	_, _, err = lu.General.Apply(rect)
	require.ErrorIs(t, err, mat.ErrNonSquare)

	square := mustDense(t, 2, []float64{1, 0, 0, 1})
	_, _, err = lu.General.ApplyEpsilon(square, -0.1)
	require.ErrorIs(t, err, factor.ErrBadEpsilon)
	_, _, err = lu.General.ApplyEpsilon(square, math.NaN())
	require.ErrorIs(t, err, factor.ErrBadEpsilon)
	_, _, err = lu.General.ApplyEpsilon(square, math.Inf(1))
	require.ErrorIs(t, err, factor.ErrBadEpsilon)
}

func TestGeneral_EpsilonTightensSingularity(t *testing.T) {
	// Well conditioned at the default threshold, singular at a loose one.
	a := mustDense(t, 2, []float64{
		1, 0,
		0, 1e-8,
	})

	_, ok, err := lu.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = lu.General.ApplyEpsilon(a, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)
}

func buildTridiagonal(t *testing.T, n int) *mat.BandedDense {
	t.Helper()
	b, err := mat.NewBandedBuilder(n, 1)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, b.Set(i, i, 2))
		if i > 0 {
			require.NoError(t, b.Set(i, i-1, -1))
			require.NoError(t, b.Set(i-1, i, -1))
		}
	}

	return b.Build()
}

func TestBand_FactorizesTridiagonal(t *testing.T) {
	a := buildTridiagonal(t, 4)

	sol, ok, err := lu.Band.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)

	prod, err := mat.Mul(sol.P(), sol.L(), sol.D(), sol.U())
	require.NoError(t, err)
	requireMatrixDelta(t, a, prod)

	// det of the n×n (2,−1) tridiagonal is n+1.
	require.Equal(t, 1, sol.SignOfDeterminant())
	require.InDelta(t, math.Log(5), sol.LogAbsDeterminant(), eps)

	x, err := sol.Solve([]float64{1, 0, 0, 1})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.InDelta(t, 1.0, x[i], eps)
	}
}

func TestBand_PivotingRequiredReturnsAbsent(t *testing.T) {
	b, err := mat.NewBandedBuilder(2, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 1, 1))
	require.NoError(t, b.Set(1, 0, 1))
	a := b.Build()

	sol, ok, err := lu.Band.Apply(a)
	require.NoError(t, err)
	require.False(t, ok) // a row swap would fix it, but swaps break the band
	require.Nil(t, sol)
}

func TestBand_RejectsNonBanded(t *testing.T) {
	a := mustDense(t, 2, []float64{1, 0, 0, 1})
	_, _, err := lu.Band.Apply(a)
	require.ErrorIs(t, err, factor.ErrNotBanded)
}

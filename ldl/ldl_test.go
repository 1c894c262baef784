// SPDX-License-Identifier: MIT
package ldl_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/ldl"
	"github.com/katalvlaran/lvlsolve/mat"
	"github.com/stretchr/testify/require"
)

const eps = 1e-10

func buildSymmetric(t *testing.T, n int, lower map[[2]int]float64) *mat.SymmetricDense {
	t.Helper()
	b, err := mat.NewSymmetricBuilder(n)
	require.NoError(t, err)
	for pos, v := range lower {
		require.NoError(t, b.Set(pos[0], pos[1], v))
	}

	return b.Build()
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

func requireReconstructs(t *testing.T, a mat.Matrix, sol *ldl.Solver) {
	t.Helper()
	prod, err := mat.Mul(sol.P(), sol.L(), sol.M(), sol.L().Transpose(), sol.P().Transpose())
	require.NoError(t, err)
	requireMatrixDelta(t, a, prod)
}

func TestGeneral_PositiveDefiniteUsesScalarPivots(t *testing.T) {
	a := buildSymmetric(t, 3, map[[2]int]float64{
		{0, 0}: 4, {1, 0}: 2, {1, 1}: 3, {2, 1}: 1, {2, 2}: 2,
	})

	sol, ok, err := ldl.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 1, sol.SignOfDeterminant())
	require.InDelta(t, 14.0, sol.Determinant().Value(), eps)
	requireReconstructs(t, a, sol)

	// All pivots 1×1: no sub-diagonal entries in M.
	for i := 0; i < 2; i++ {
		v, errAt := sol.M().At(i+1, i)
		require.NoError(t, errAt)
		require.Equal(t, 0.0, v)
	}
}

func TestGeneral_IndefiniteNeedsBlockPivot(t *testing.T) {
	// Zero diagonal in the leading 2×2 forces a genuine 2×2 pivot.
	a := buildSymmetric(t, 4, map[[2]int]float64{
		{1, 0}: 5,
		{2, 0}: 1, {2, 2}: 2,
		{3, 1}: 1, {3, 3}: 2,
	})

	sol, ok, err := ldl.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)

	// Block structure: M must carry a sub-diagonal entry at (1,0).
	v, err := sol.M().At(1, 0)
	require.NoError(t, err)
	require.NotZero(t, v)

	require.Equal(t, -1, sol.SignOfDeterminant())
	require.InDelta(t, -99.0, sol.Determinant().Value(), eps)
	requireReconstructs(t, a, sol)

	inv := sol.Inverse()
	prod, err := mat.Mul(a, inv)
	require.NoError(t, err)
	ident, err := mat.NewDiagonal([]float64{1, 1, 1, 1})
	require.NoError(t, err)
	requireMatrixDelta(t, ident, prod)
}

func TestGeneral_OffDiagonalMaximumGetsPaired(t *testing.T) {
	// The column-0 off-diagonal maximum sits in the last row, so the
	// 2×2 pivot must swap it up next to row 0.
	a := buildSymmetric(t, 3, map[[2]int]float64{
		{1, 0}: 1, {1, 1}: 1,
		{2, 0}: 8,
	})

	sol, ok, err := ldl.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)
	requireReconstructs(t, a, sol)

	// Cofactor expansion of [[0,1,8],[1,1,0],[8,0,0]] gives det −64.
	require.Equal(t, -1, sol.SignOfDeterminant())
	require.InDelta(t, -64.0, sol.Determinant().Value(), eps)
}

func TestGeneral_SingularReturnsAbsent(t *testing.T) {
	a := buildSymmetric(t, 2, map[[2]int]float64{
		{0, 0}: 1, {1, 0}: 1, {1, 1}: 1, // rank 1
	})

	sol, ok, err := ldl.General.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestGeneral_DenormalScaleUnderflowsToAbsent(t *testing.T) {
	// Both 1×1 pivots clear the threshold on the norm-scaled copy, but
	// multiplying the trailing pivot back by the denormal norm
	// underflows it to zero. The result must be absent, not a solver
	// carrying a singular M.
	tiny := math.SmallestNonzeroFloat64
	a := buildSymmetric(t, 2, map[[2]int]float64{
		{0, 0}: 2024 * tiny, {1, 0}: 402 * tiny, {1, 1}: 80 * tiny,
	})

	sol, ok, err := ldl.General.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestGeneral_StructuralRejection(t *testing.T) {
	dense, err := mat.NewDense(2, 2, []float64{1, 2, 2, 1})
	require.NoError(t, err)
	_, _, err = ldl.General.Apply(dense)
	require.ErrorIs(t, err, factor.ErrNotSymmetric)

	sym := buildSymmetric(t, 2, map[[2]int]float64{{0, 0}: 1, {1, 1}: 1})
	_, _, err = ldl.General.ApplyEpsilon(sym, math.NaN())
	require.ErrorIs(t, err, factor.ErrBadEpsilon)
}

func TestBand_DiagonallyDominantIndefinite(t *testing.T) {
	// Negative but dominant diagonal: the non-pivoting variant accepts
	// it and tracks the sign through M.
	b, err := mat.NewBandedSymmetricBuilder(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, -4))
	require.NoError(t, b.Set(1, 0, 1))
	require.NoError(t, b.Set(1, 1, -4))
	require.NoError(t, b.Set(2, 1, 1))
	require.NoError(t, b.Set(2, 2, -4))
	a := b.Build()

	sol, ok, err := ldl.Band.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)

	// det of the 3×3 (−4,1) tridiagonal: −4·15 − 1·(−4) = −56.
	require.Equal(t, -1, sol.SignOfDeterminant())
	require.InDelta(t, -56.0, sol.Determinant().Value(), eps)
	requireReconstructs(t, a, sol)

	x, err := sol.Solve([]float64{-3, -2, -3})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, x[i], eps)
	}
}

func TestBand_DominatedDiagonalReturnsAbsent(t *testing.T) {
	// Zero diagonal with off-diagonal mass: the pivoting variant would
	// take a 2×2 block; the banded one must give up.
	b, err := mat.NewBandedSymmetricBuilder(2, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, 1))
	a := b.Build()

	sol, ok, err := ldl.Band.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)

	// The pivoting executor handles the same matrix.
	full, ok, err := ldl.General.Apply(a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, -1, full.SignOfDeterminant())
}

func TestBand_DenormalScaleUnderflowsToAbsent(t *testing.T) {
	// Same boundary as the pivoting variant: pivots pass on the scaled
	// copy, the rescaled trailing pivot underflows to zero.
	tiny := math.SmallestNonzeroFloat64
	b, err := mat.NewBandedSymmetricBuilder(2, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 2024*tiny))
	require.NoError(t, b.Set(1, 0, 402*tiny))
	require.NoError(t, b.Set(1, 1, 80*tiny))
	a := b.Build()

	sol, ok, err := ldl.Band.Apply(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestBand_RejectsUnbandedSymmetric(t *testing.T) {
	a := buildSymmetric(t, 2, map[[2]int]float64{{0, 0}: 1, {1, 1}: 1})
	_, _, err := ldl.Band.Apply(a)
	require.ErrorIs(t, err, factor.ErrNotBanded)
}

// SPDX-License-Identifier: MIT
package mat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsolve/mat"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestLowerTriangular_UnitDiagonalAndFootprint(t *testing.T) {
	b, err := mat.NewLowerTriangularBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, 2))
	require.NoError(t, b.Set(2, 0, 3))
	require.NoError(t, b.Set(2, 1, 4))
	require.ErrorIs(t, b.Set(0, 0, 9), mat.ErrOutsideFootprint) // diagonal is implicit
	require.ErrorIs(t, b.Set(0, 2, 9), mat.ErrOutsideFootprint)
	l := b.Build()

	diag, err := l.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, diag)
	upper, err := l.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, upper)

	y, err := l.Operate([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 8}, y)

	yt, err := l.OperateTranspose([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 5, 1}, yt)
}

func TestLowerTriangular_InverseRoundTrip(t *testing.T) {
	b, err := mat.NewLowerTriangularBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, 0.5))
	require.NoError(t, b.Set(2, 0, -1))
	require.NoError(t, b.Set(2, 1, 2))
	require.NoError(t, b.Set(3, 1, -0.25))
	require.NoError(t, b.Set(3, 2, 1.5))
	l := b.Build()

	inv := l.Inverse()
	require.Same(t, inv, l.Inverse()) // single production

	prod, err := mat.Mul(l, inv)
	require.NoError(t, err)
	requireIdentity(t, prod)
}

func TestUnitUpper_ViewDelegatesToBase(t *testing.T) {
	b, err := mat.NewLowerTriangularBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, 2))
	require.NoError(t, b.Set(2, 1, -3))
	l := b.Build()

	u := l.Transpose()
	require.Same(t, u, l.Transpose())
	require.Same(t, mat.Matrix(l), u.Transpose())

	lv, err := l.At(1, 0)
	require.NoError(t, err)
	uv, err := u.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, lv, uv)

	prod, err := mat.Mul(u, u.(interface{ Inverse() mat.Matrix }).Inverse())
	require.NoError(t, err)
	requireIdentity(t, prod)
}

func TestDiagonal_InverseAndDeterminant(t *testing.T) {
	d, err := mat.NewDiagonal([]float64{2, -4, 0.5})
	require.NoError(t, err)
	require.Equal(t, -1, d.SignOfDeterminant())
	require.InDelta(t, math.Log(4.0), d.LogAbsDeterminant(), eps)

	inv := d.Inverse()
	require.Same(t, inv, d.Inverse())
	v, err := inv.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, -0.25, v)

	zero, err := mat.NewDiagonal([]float64{1, 0, 3})
	require.NoError(t, err)
	require.Equal(t, 0, zero.SignOfDeterminant())
	require.True(t, math.IsInf(zero.LogAbsDeterminant(), -1))
}

func TestBlockDiagonal_MixedBlocks(t *testing.T) {
	b, err := mat.NewBlockDiagonalBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b.AppendScalar(3))
	require.NoError(t, b.AppendBlock(1, 4, 2))
	_, err = b.Build()
	require.ErrorIs(t, err, mat.ErrBadShape) // one slot left uncovered

	b2, err := mat.NewBlockDiagonalBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b2.AppendScalar(3))
	require.NoError(t, b2.AppendBlock(1, 5, 2)) // det = 1·5 − 4 = 1
	require.NoError(t, b2.AppendScalar(-2))
	m, err := b2.Build()
	require.NoError(t, err)

	require.Equal(t, -1, m.SignOfDeterminant()) // 3 · 1 · (−2)
	require.InDelta(t, math.Log(6.0), m.LogAbsDeterminant(), eps)

	sub, err := m.At(2, 1)
	require.NoError(t, err)
	sup, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, sub, sup)

	prod, err := mat.Mul(m, m.Inverse())
	require.NoError(t, err)
	requireIdentity(t, prod)
}

func TestPermutation_SwapParityAndInverse(t *testing.T) {
	b, err := mat.NewPermutationBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b.Swap(0, 2))
	require.NoError(t, b.Swap(1, 3))
	require.NoError(t, b.Swap(1, 1)) // no-op, parity unchanged
	p := b.Build()
	require.Equal(t, 1, p.Sign()) // two transpositions

	y, err := p.Operate([]float64{10, 20, 30, 40})
	require.NoError(t, err)
	require.Equal(t, []float64{30, 40, 10, 20}, y)

	// P⁻¹ == Pᵀ and both are the same cached matrix.
	require.Same(t, p.Inverse(), p.Transpose())

	back, err := p.Inverse().Operate(y)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30, 40}, back)
}

func TestNewPermutation_RejectsNonBijection(t *testing.T) {
	_, err := mat.NewPermutation([]int{0, 0, 1})
	require.ErrorIs(t, err, mat.ErrBadShape)
	_, err = mat.NewPermutation([]int{0, 3})
	require.ErrorIs(t, err, mat.ErrBadShape)

	p, err := mat.NewPermutation([]int{1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, -1, p.Sign())
}

// requireIdentity asserts that m is numerically the identity.
func requireIdentity(t *testing.T, m mat.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, eps)
		}
	}
}

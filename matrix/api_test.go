// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densecalc/matrix"
)

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLikeConstructors(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	Z, err := matrix.ZerosLike(A)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, Z)

	_, err = matrix.IdentityLike(A)
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	I, err := matrix.IdentityLike(MustDense(t, 2, 2))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, I)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAliasesDelegate(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	s, err := matrix.Sum(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, s)

	d, err := matrix.Diff(B, A)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 4}, {4, 4}}, d)

	p, err := matrix.Product(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, p)

	inv, err := matrix.InverseOf(A)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv, 0, 1e-12)

	q, err := matrix.Quotient(A, A)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0}, {0, 1}}, q, 0, 1e-12)

	c := matrix.CloneMatrix(A)
	require.Equal(t, A.Flat(), c.(*matrix.Dense).Flat())
}

func TestAllClose(t *testing.T) {
	A := MustRows(t, [][]float64{{1, math.Inf(1)}, {-2, 3}})
	B := MustRows(t, [][]float64{{1 + 1e-12, math.Inf(1)}, {-2, 3}})

	ok, err := matrix.AllClose(A, B, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{A}, B, 0, 1e-15)
	require.NoError(t, err)
	require.False(t, ok)

	// negative tolerances are taken by magnitude
	ok, err = matrix.AllClose(A, B, 0, -1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	N := MustRows(t, [][]float64{{math.NaN(), math.Inf(1)}, {-2, 3}})
	ok, err = matrix.AllClose(N, N, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(A, B, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(A, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

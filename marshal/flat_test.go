// SPDX-License-Identifier: MIT
package marshal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densecalc/marshal"
	"github.com/katalvlaran/densecalc/matrix"
)

// rowView is a Matrix that is not *matrix.Dense, used to drive Encode's At path.
type rowView struct{ matrix.Matrix }

func TestDims(t *testing.T) {
	d := marshal.Dims{Rows: 2, Cols: 3}
	require.Equal(t, 6, d.Len())
	require.Equal(t, "2x3", d.String())

	m, err := matrix.NewDense(4, 1)
	require.NoError(t, err)
	require.Equal(t, marshal.Dims{Rows: 4, Cols: 1}, marshal.DimsOf(m))
}

func TestDecode_RowMajor(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	m, err := marshal.Decode(buf, marshal.Dims{Rows: 2, Cols: 3})
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	v, err = m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	buf[0] = 99
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "decoded matrix must not alias the input buffer")
}

func TestDecode_Errors(t *testing.T) {
	_, err := marshal.Decode([]float64{1, 2, 3}, marshal.Dims{Rows: 2, Cols: 2})
	require.ErrorIs(t, err, matrix.ErrBufferLength)
	require.Contains(t, err.Error(), "2x2")

	_, err = marshal.Decode(nil, marshal.Dims{Rows: 0, Cols: 2})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = marshal.Decode([]float64{1}, marshal.Dims{Rows: -1, Cols: -1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Rows*Cols overflows int; an empty buffer must not slip through
	_, err = marshal.Decode(nil, marshal.Dims{Rows: math.MaxInt / 2, Cols: 4})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestEncode_RoundTrip(t *testing.T) {
	buf := []float64{1.5, -2, math.Inf(1), 0, 7, 8}
	d := marshal.Dims{Rows: 3, Cols: 2}

	m, err := marshal.Decode(buf, d)
	require.NoError(t, err)

	out, err := marshal.Encode(m)
	require.NoError(t, err)
	require.Equal(t, buf, out)

	viaAt, err := marshal.Encode(rowView{m})
	require.NoError(t, err)
	require.Equal(t, buf, viaAt)

	out[0] = -1
	again, err := marshal.Encode(m)
	require.NoError(t, err)
	require.Equal(t, 1.5, again[0], "encoded buffer must be a fresh copy")
}

func TestEncode_Nil(t *testing.T) {
	_, err := marshal.Encode(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

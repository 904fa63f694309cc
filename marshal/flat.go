// SPDX-License-Identifier: MIT

package marshal

import (
	"fmt"

	"github.com/katalvlaran/densecalc/matrix"
)

// Dims is the (rows, cols) pair that accompanies every flat buffer.
type Dims struct {
	Rows int
	Cols int
}

// Len returns the number of elements a buffer of this shape holds.
func (d Dims) Len() int { return d.Rows * d.Cols }

// String renders the shape as "RxC".
func (d Dims) String() string { return fmt.Sprintf("%dx%d", d.Rows, d.Cols) }

// DimsOf returns the shape of m.
func DimsOf(m matrix.Matrix) Dims {
	return Dims{Rows: m.Rows(), Cols: m.Cols()}
}

// Decode reads d.Rows*d.Cols values in row-major order into a new Dense.
// Stage 1: reject non-positive dims (matrix.ErrInvalidDimensions).
// Stage 2: reject len(buf) != d.Len() (matrix.ErrBufferLength).
// Stage 3: copy; the result never aliases buf.
func Decode(buf []float64, d Dims) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFrom(d.Rows, d.Cols, buf)
	if err != nil {
		return nil, fmt.Errorf("marshal: decode %s: %w", d, err)
	}

	return m, nil
}

// Encode writes m out in row-major order into a newly allocated buffer of
// length Rows*Cols. *matrix.Dense is copied directly; any other Matrix is
// read through At.
func Encode(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("marshal: encode: %w", err)
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.Flat(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("marshal: encode: %w", err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep ownership explicit: constructors copy caller data, Flat returns a copy.
//
// Numeric policy:
//   - Dense stores any float64, including NaN and ±Inf. Kernels follow IEEE-754,
//     so non-finite inputs propagate into results instead of being rejected.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Flat: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
	ctxRows = "NewDenseFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "

	// DefaultPrecision is the number of fraction digits used by Format
	// when a negative precision is requested.
	DefaultPrecision = 2
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// validShape reports rows>0, cols>0 and rows*cols representable as int.
func validShape(rows, cols int) bool {
	return rows > 0 && cols > 0 && cols <= math.MaxInt/rows
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols does not
//     overflow int; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if !validShape(rows, cols) {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom builds an r×c Dense from a row-major slice.
// MAIN DESCRIPTION:
//   - Copy-in constructor: the returned matrix never aliases data.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 without rows*cols overflow.
//   - Stage 2: require len(data) == rows*cols.
//   - Stage 3: allocate and copy.
//
// Errors:
//   - ErrInvalidDimensions, ErrBufferLength.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len=%d: %w", ctxFrom, rows, cols, len(data), ErrBufferLength)
	}
	buf := make([]float64, rows*cols)
	copy(buf, data) // detach from caller storage

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a slice of equally sized rows.
// Jagged input is rejected with ErrBadShape; empty input with ErrInvalidDimensions.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), c, ErrBadShape)
		}
		buf = append(buf, row...)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, NaN and ±Inf included.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Flat returns a newly allocated row-major copy of the elements.
// Mutating the returned slice never affects m.
// Complexity: O(r*c).
func (m *Dense) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// RowSlices returns the matrix as freshly allocated rows.
// Complexity: O(r*c).
func (m *Dense) RowSlices() [][]float64 {
	out := make([][]float64, m.r)
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		row := make([]float64, m.c)
		copy(row, m.data[base:base+m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines of comma-separated %g values.
// Intended for logs and debugging; "[1, 2]\n[3, 4]\n" for a 2×2.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Format renders rows as space-separated fixed-point values with prec
// fraction digits, one row per line and no trailing newline:
//
//	1.00 2.00
//	3.00 4.00
//
// A negative prec selects DefaultPrecision.
func (m *Dense) Format(prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}
	lines := make([]string, m.r)
	cells := make([]string, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			cells[j] = strconv.FormatFloat(m.data[base+j], 'f', prec, 64)
		}
		lines[i] = strings.Join(cells, " ")
	}

	return strings.Join(lines, "\n")
}

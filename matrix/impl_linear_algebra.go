// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, 2×2 inversion
// and division by a 2×2 matrix. All functions perform strict fail-fast
// validation and return wrapped sentinels on shape or numeric violations.
//
// Purpose:
//   - Declare the arithmetic kernels and the shared constants they depend on.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result and never mutates its operands.
//   - Kernels take a flat-slice fast path when operands are *Dense; the
//     interface fallback visits elements in the same order, so both paths
//     produce bit-identical results.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every multiplication accumulator.
const ZeroSum = 0.0

// SingularTolerance is the determinant magnitude below which a 2×2 matrix is
// treated as singular. It is a fixed constant, not a tunable.
const SingularTolerance = 1e-10

// inverseOrder is the only square order the inverse kernel implements.
const inverseOrder = 2

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opInverse     = "Inverse"
	opDeterminant = "Determinant2x2"
	opDivide      = "Divide"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - a + (-1)*b equals a - b exactly under IEEE-754 (negation is exact).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - NaN and ±Inf propagate per IEEE-754.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For every (i,j) start from ZeroSum and accumulate
//     A[i,k]*B[k,j] for k = 0..n-1, in that order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k order on both paths. No term is skipped: a zero in A still
//     multiplies B[k,j], so NaN/Inf in B reach the result.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k     int
		av, bv, acc float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for j = 0; j < bCols; j++ {
					acc = ZeroSum
					for k = 0; k < aCols; k++ {
						acc += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[rowOffsetR+j] = acc
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// entries2x2 loads the four cells of a 2×2 matrix in row-major order.
// Caller guarantees m is non-nil and 2×2.
func entries2x2(m Matrix) (m00, m01, m10, m11 float64, err error) {
	if d, ok := m.(*Dense); ok {
		return d.data[0], d.data[1], d.data[2], d.data[3], nil
	}
	var v [4]float64
	for idx := range v {
		v[idx], err = m.At(idx/inverseOrder, idx%inverseOrder)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("At(%d,%d): %w", idx/inverseOrder, idx%inverseOrder, err)
		}
	}

	return v[0], v[1], v[2], v[3], nil
}

// checkInvertibleShape runs the shape gate shared by Inverse and Determinant2x2:
// square first (ErrNotSquare), then order 2 (ErrUnsupported).
func checkInvertibleShape(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() != inverseOrder {
		return fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrUnsupported)
	}

	return nil
}

// Determinant2x2 returns det(M) = M[0,0]*M[1,1] - M[0,1]*M[1,0].
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (non-square), ErrUnsupported (square, not 2×2).
//
// Complexity: O(1).
func Determinant2x2(m Matrix) (float64, error) {
	if err := checkInvertibleShape(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	m00, m01, m10, m11, err := entries2x2(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m00*m11 - m01*m10, nil
}

// Inverse returns M⁻¹ for a 2×2 matrix M.
// Implementation:
//   - Stage 1: Validate non-nil and square (ErrNotSquare), then order 2 (ErrUnsupported).
//   - Stage 2: det = M00*M11 - M01*M10; |det| < SingularTolerance ⇒ ErrSingular.
//   - Stage 3: invDet = 1/det and write the adjugate scaled by invDet:
//
//	[  M11*invDet  -M01*invDet ]
//	[ -M10*invDet   M00*invDet ]
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrUnsupported, ErrSingular.
//
// Complexity:
//   - Time O(1), Space O(1) beyond the 2×2 result.
//
// Notes:
//   - Square orders other than 2 are out of scope and report ErrUnsupported
//     without inspecting values.
//   - A NaN determinant is not "below tolerance"; the NaN reaches the result.
func Inverse(m Matrix) (Matrix, error) {
	if err := checkInvertibleShape(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	m00, m01, m10, m11, err := entries2x2(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := m00*m11 - m01*m10
	if math.Abs(det) < SingularTolerance {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	invDet := 1.0 / det

	return &Dense{
		r: inverseOrder,
		c: inverseOrder,
		data: []float64{
			m11 * invDet, -m01 * invDet,
			-m10 * invDet, m00 * invDet,
		},
	}, nil
}

// Divide computes A × B⁻¹ ("A / B") for a 2×2 divisor B.
// Implementation:
//   - Stage 1: ValidateNotNil(A); B must be square (ErrNotSquare).
//   - Stage 2: Inverse(B), then Mul(A, B⁻¹).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrUnsupported, ErrSingular from the inverse;
//     ErrShapeMismatch when A.Cols != 2.
//
// Complexity:
//   - Time O(r*2*2), Space O(r*2).
func Divide(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	if err := ValidateSquare(b); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	inv, err := Inverse(b)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	out, err := Mul(a, inv)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return out, nil
}

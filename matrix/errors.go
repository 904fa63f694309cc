// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the marshal/bridge layers. Kernels return these sentinels
// wrapped with an operation tag; callers match them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(op, ErrX) so the text reads
// "Inverse: matrix: singular matrix" while errors.Is(err, ErrSingular) holds.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> numeric (singular) -> scope (unsupported).
// Exception: Inverse reports ErrUnsupported for square non-2×2 input before it
// looks at any value, so a 3×3 singular matrix is Unsupported, not Singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when row data is not rectangular (jagged rows)
	// or a requested window/shape cannot be honored.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBufferLength indicates a flat buffer whose length differs from rows*cols.
	ErrBufferLength = errors.New("matrix: buffer length does not match rows*cols")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the determinant magnitude falls below
	// SingularTolerance during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnsupported marks a square shape the inverse kernel does not handle
	// (anything other than 2×2).
	ErrUnsupported = errors.New("matrix: operation not supported for this shape")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

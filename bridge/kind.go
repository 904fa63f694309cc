// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"

	"github.com/katalvlaran/densecalc/matrix"
)

// Kind categorizes the outcome of a boundary call.
// The numeric values are part of the C ABI and must not be reordered.
type Kind int

const (
	// KindOK marks a successful call.
	KindOK Kind = iota
	// KindShapeMismatch: operand shapes incompatible for add/subtract/multiply.
	KindShapeMismatch
	// KindNotSquare: inverse (or divisor) requested on a non-square matrix.
	KindNotSquare
	// KindSingular: determinant magnitude below matrix.SingularTolerance.
	KindSingular
	// KindUnsupported: inverse requested on a square shape other than 2×2.
	KindUnsupported
	// KindInvalidInput: buffer or dimensions rejected before any arithmetic.
	KindInvalidInput
	// KindInternal: any error not covered above.
	KindInternal
)

var kindNames = [...]string{
	KindOK:            "ok",
	KindShapeMismatch: "shape_mismatch",
	KindNotSquare:     "not_square",
	KindSingular:      "singular",
	KindUnsupported:   "unsupported",
	KindInvalidInput:  "invalid_input",
	KindInternal:      "internal",
}

// String returns the snake_case name used in logs and metric labels.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// KindOf maps an error from matrix or marshal onto its Kind.
// nil maps to KindOK.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, matrix.ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, matrix.ErrNotSquare):
		return KindNotSquare
	case errors.Is(err, matrix.ErrSingular):
		return KindSingular
	case errors.Is(err, matrix.ErrUnsupported):
		return KindUnsupported
	case errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrBufferLength),
		errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrNilMatrix):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

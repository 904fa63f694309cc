// Package matrix is the dense arithmetic engine of densecalc.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with bounds-checked At/Set and
//     copy-in/copy-out constructors (NewDenseFrom, NewDenseFromRows, Flat).
//   - Add, Sub and Mul over any Matrix implementation, each validating
//     operand shapes before computing and returning a freshly allocated result.
//   - Inverse and Determinant2x2 for 2×2 matrices, with a fixed singularity
//     tolerance (SingularTolerance), and Divide (A × B⁻¹).
//   - Sentinel errors (ErrShapeMismatch, ErrNotSquare, ErrSingular,
//     ErrUnsupported, ...) matched with errors.Is.
//
// Every function is pure: operands are read-only, results are new values,
// and no state survives a call, so concurrent use needs no coordination.
//
// Multiplication is the direct i→j→k triple loop; inversion is limited to
// the 2×2 case and reports ErrUnsupported for any other square order.
package matrix

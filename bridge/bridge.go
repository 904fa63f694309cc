// SPDX-License-Identifier: MIT

package bridge

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/densecalc/logging"
	"github.com/katalvlaran/densecalc/marshal"
	"github.com/katalvlaran/densecalc/matrix"
)

// Operation names used in logs, metric labels and the C ABI.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpInverse  = "inverse"
	OpDivide   = "divide"
)

type binaryKernel func(a, b matrix.Matrix) (matrix.Matrix, error)

type unaryKernel func(m matrix.Matrix) (matrix.Matrix, error)

// Bridge runs the decode → compute → encode pipeline for each call.
// It holds no per-call state and is safe for concurrent use. The zero value
// behaves like New() with no options.
type Bridge struct {
	log     *slog.Logger
	metrics *Metrics
	newID   func() string
}

// New builds a Bridge. Without options it discards logs and records no metrics.
func New(opts ...Option) *Bridge {
	b := defaultBridge()
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Add returns a + b. Shapes must match (KindShapeMismatch otherwise).
func (b *Bridge) Add(a []float64, da marshal.Dims, c []float64, dc marshal.Dims) Result {
	return b.binary(OpAdd, matrix.Add, a, da, c, dc)
}

// Subtract returns a - b. Shapes must match (KindShapeMismatch otherwise).
func (b *Bridge) Subtract(a []float64, da marshal.Dims, c []float64, dc marshal.Dims) Result {
	return b.binary(OpSubtract, matrix.Sub, a, da, c, dc)
}

// Multiply returns a × b with shape (da.Rows, dc.Cols).
// da.Cols must equal dc.Rows (KindShapeMismatch otherwise).
func (b *Bridge) Multiply(a []float64, da marshal.Dims, c []float64, dc marshal.Dims) Result {
	return b.binary(OpMultiply, matrix.Mul, a, da, c, dc)
}

// Inverse returns m⁻¹ for a 2×2 m. Non-square input yields KindNotSquare,
// other square orders KindUnsupported, near-zero determinant KindSingular.
func (b *Bridge) Inverse(m []float64, dm marshal.Dims) Result {
	return b.unary(OpInverse, matrix.Inverse, m, dm)
}

// Divide returns a × c⁻¹ for a 2×2 divisor c.
func (b *Bridge) Divide(a []float64, da marshal.Dims, c []float64, dc marshal.Dims) Result {
	return b.binary(OpDivide, matrix.Divide, a, da, c, dc)
}

func (b *Bridge) binary(op string, kernel binaryKernel, a []float64, da marshal.Dims, c []float64, dc marshal.Dims) Result {
	start := time.Now()
	res := func() Result {
		ma, err := marshal.Decode(a, da)
		if err != nil {
			return failed(err)
		}
		mc, err := marshal.Decode(c, dc)
		if err != nil {
			return failed(err)
		}
		out, err := kernel(ma, mc)
		if err != nil {
			return failed(err)
		}

		return encoded(out)
	}()
	b.finish(op, res, time.Since(start), slog.String("lhs", da.String()), slog.String("rhs", dc.String()))

	return res
}

func (b *Bridge) unary(op string, kernel unaryKernel, m []float64, dm marshal.Dims) Result {
	start := time.Now()
	res := func() Result {
		mm, err := marshal.Decode(m, dm)
		if err != nil {
			return failed(err)
		}
		out, err := kernel(mm)
		if err != nil {
			return failed(err)
		}

		return encoded(out)
	}()
	b.finish(op, res, time.Since(start), slog.String("operand", dm.String()))

	return res
}

func encoded(m matrix.Matrix) Result {
	data, err := marshal.Encode(m)
	if err != nil {
		return failed(err)
	}

	return Result{Data: data, Rows: m.Rows(), Cols: m.Cols(), Kind: KindOK}
}

// finish is the diagnostic side channel: every failure is logged with the
// operation, kind and a correlation id, then counted.
func (b *Bridge) finish(op string, res Result, elapsed time.Duration, shapes ...slog.Attr) {
	b.metrics.observe(op, res.Kind, elapsed)

	attrs := make([]any, 0, len(shapes)+4)
	attrs = append(attrs, slog.String("op", op), slog.String("kind", res.Kind.String()))
	for _, s := range shapes {
		attrs = append(attrs, s)
	}
	if res.Kind != KindOK {
		attrs = append(attrs, slog.String("call_id", b.callID()), slog.Any("error", res.Err))
		b.logger().Error("matrix operation failed", attrs...)
		return
	}
	attrs = append(attrs, slog.String("result", res.Dims().String()))
	b.logger().Debug("matrix operation completed", attrs...)
}

func (b *Bridge) logger() *slog.Logger {
	if b.log == nil {
		return logging.Discard()
	}

	return b.log
}

func (b *Bridge) callID() string {
	if b.newID == nil {
		return uuid.NewString()
	}

	return b.newID()
}

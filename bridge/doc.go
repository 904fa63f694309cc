// Package bridge is the call surface a foreign host uses to reach the matrix
// engine.
//
// Each operation takes flat row-major buffers with their Dims, decodes them,
// runs the matrix kernel and encodes the result into a new buffer:
//
//	res := bridge.New().Multiply(a, marshal.Dims{Rows: 2, Cols: 3}, b, marshal.Dims{Rows: 3, Cols: 2})
//	if !res.OK() {
//		// res.Kind says why; res.Err has the detail.
//	}
//
// Failures never panic and are never retried. They come back as a Result
// whose Kind identifies the category (shape mismatch, not square, singular,
// unsupported, invalid input) and are also logged with the operation name
// through the configured slog.Logger. Optional Prometheus metrics count calls
// by operation and outcome.
package bridge

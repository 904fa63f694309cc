// SPDX-License-Identifier: MIT

package bridge

import (
	"github.com/katalvlaran/densecalc/marshal"
	"github.com/katalvlaran/densecalc/matrix"
)

// Result is the outcome of one boundary call.
// On success Data holds Rows*Cols row-major values and Kind is KindOK.
// On failure Data is nil, Kind names the category and Err carries the detail.
type Result struct {
	Data []float64
	Rows int
	Cols int
	Kind Kind
	Err  error
}

// OK reports whether the call produced a buffer.
func (r Result) OK() bool { return r.Kind == KindOK && r.Data != nil }

// Dims returns the result shape. It is zero for failed calls.
func (r Result) Dims() marshal.Dims { return marshal.Dims{Rows: r.Rows, Cols: r.Cols} }

// Matrix decodes Data back into a Dense.
// It returns the call's error when the call failed.
func (r Result) Matrix() (*matrix.Dense, error) {
	if !r.OK() {
		return nil, r.Err
	}

	return marshal.Decode(r.Data, r.Dims())
}

func failed(err error) Result {
	return Result{Kind: KindOf(err), Err: err}
}

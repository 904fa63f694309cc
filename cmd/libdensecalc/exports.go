//go:build cgo

package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/katalvlaran/densecalc/bridge"
	"github.com/katalvlaran/densecalc/config"
	"github.com/katalvlaran/densecalc/marshal"
)

var lib = func() *bridge.Bridge {
	cfg, err := config.Load()
	return newLibrary(os.Stderr, cfg, err)
}()

// kindNames holds one static C string per kind; never freed.
var kindNames = func() map[bridge.Kind]*C.char {
	out := make(map[bridge.Kind]*C.char)
	for k := bridge.KindOK; k <= bridge.KindInternal; k++ {
		out[k] = C.CString(k.String())
	}
	out[-1] = C.CString("unknown")
	return out
}()

// view exposes caller memory as a Go slice without copying. Decode copies it
// before any arithmetic, so the slice never outlives the call.
func view(p *C.double, rows, cols C.int) []float64 {
	if p == nil || rows <= 0 || cols <= 0 {
		return nil
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(p)), int(rows)*int(cols))
}

func dims(rows, cols C.int) marshal.Dims {
	return marshal.Dims{Rows: int(rows), Cols: int(cols)}
}

// deliver copies a successful result into C memory.
func deliver(res bridge.Result, out **C.double, outRows, outCols *C.int) C.int {
	if out == nil {
		return C.int(bridge.KindInvalidInput)
	}
	*out = nil
	if !res.OK() {
		return C.int(res.Kind)
	}

	n := len(res.Data)
	buf := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.double(0))))
	copy(unsafe.Slice((*float64)(buf), n), res.Data)
	*out = (*C.double)(buf)
	if outRows != nil {
		*outRows = C.int(res.Rows)
	}
	if outCols != nil {
		*outCols = C.int(res.Cols)
	}

	return C.int(bridge.KindOK)
}

//export densecalc_add
func densecalc_add(a *C.double, ra, ca C.int, b *C.double, rb, cb C.int, out **C.double, outRows, outCols *C.int) C.int {
	return deliver(lib.Add(view(a, ra, ca), dims(ra, ca), view(b, rb, cb), dims(rb, cb)), out, outRows, outCols)
}

//export densecalc_sub
func densecalc_sub(a *C.double, ra, ca C.int, b *C.double, rb, cb C.int, out **C.double, outRows, outCols *C.int) C.int {
	return deliver(lib.Subtract(view(a, ra, ca), dims(ra, ca), view(b, rb, cb), dims(rb, cb)), out, outRows, outCols)
}

//export densecalc_mul
func densecalc_mul(a *C.double, ra, ca C.int, b *C.double, rb, cb C.int, out **C.double, outRows, outCols *C.int) C.int {
	return deliver(lib.Multiply(view(a, ra, ca), dims(ra, ca), view(b, rb, cb), dims(rb, cb)), out, outRows, outCols)
}

//export densecalc_divide
func densecalc_divide(a *C.double, ra, ca C.int, b *C.double, rb, cb C.int, out **C.double, outRows, outCols *C.int) C.int {
	return deliver(lib.Divide(view(a, ra, ca), dims(ra, ca), view(b, rb, cb), dims(rb, cb)), out, outRows, outCols)
}

//export densecalc_inverse
func densecalc_inverse(m *C.double, rows, cols C.int, out **C.double, outRows, outCols *C.int) C.int {
	return deliver(lib.Inverse(view(m, rows, cols), dims(rows, cols)), out, outRows, outCols)
}

//export densecalc_free
func densecalc_free(p *C.double) {
	C.free(unsafe.Pointer(p))
}

//export densecalc_kind_name
func densecalc_kind_name(code C.int) *C.char {
	if s, ok := kindNames[bridge.Kind(code)]; ok {
		return s
	}

	return kindNames[-1]
}

// Package densecalc is a dense-matrix arithmetic engine with a flat-buffer
// boundary, usable from Go, from C through a shared library, and from the
// command line.
//
// What is inside?
//
//	matrix/   Dense storage, Add/Sub/Mul, 2×2 Inverse and Divide, sentinel errors
//	marshal/  flat row-major buffers ⇄ Dense, inline literals, YAML/JSON documents
//	bridge/   decode → compute → encode per call, outcome Kind, logs and metrics
//	config/   DENSECALC_* environment settings
//	logging/  slog logger construction
//	cmd/densecalc     CLI host
//	cmd/libdensecalc  C ABI (go build -buildmode=c-shared)
//
// Quick example:
//
//	b := bridge.New()
//	res := b.Multiply([]float64{1, 2, 3, 4}, marshal.Dims{Rows: 2, Cols: 2},
//		[]float64{5, 6, 7, 8}, marshal.Dims{Rows: 2, Cols: 2})
//	// res.Data == []float64{19, 22, 43, 50}, res.Kind == bridge.KindOK
//
// Every operation is stateless and allocates its own result, so calls may
// run concurrently without coordination.
//
//	go get github.com/katalvlaran/densecalc
package densecalc

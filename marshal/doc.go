// Package marshal converts between the flat-buffer form used at the
// foreign-call boundary and matrix.Dense.
//
// A flat buffer is a []float64 of rows*cols values in row-major order. Its
// shape travels separately as Dims. Decode copies the buffer into a new Dense
// and Encode copies a matrix out into a new buffer, so neither direction ever
// aliases caller memory.
//
// The package also owns the self-describing serialization edge used by the
// densecalc CLI: inline literals ("1,2;3,4") and YAML/JSON documents.
package marshal

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep fixture values exactly representable so exact comparisons hold.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densecalc/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface (non-*Dense) path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// Fill writes f(i,j) into every cell of m.
func Fill(t *testing.T, m matrix.Matrix, f func(i, j int) float64) {
	t.Helper()
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, f(i, j))
		}
	}
}

// CompareExact asserts that got has the shape of want and equal cells (==).
func CompareExact(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape: want %dx%d, got %dx%d", len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	var v float64
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			v = MustAt(t, got, i, j)
			if v != want[i][j] {
				t.Fatalf("[%d,%d]: want %v, got %v", i, j, want[i][j], v)
			}
		}
	}
}

// CompareClose asserts AllClose(got, want) with the given tolerances.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, MustRows(t, want), rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("not close:\nwant %v\ngot\n%v", want, got)
	}
}

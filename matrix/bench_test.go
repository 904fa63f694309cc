// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densecalc/matrix"
)

func benchPair(b *testing.B, n int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	x, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	y, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = x.Set(i, j, float64(i+j))
			_ = y.Set(i, j, float64(i-j))
		}
	}

	return x, y
}

func BenchmarkAdd(b *testing.B) {
	for _, n := range []int{8, 64, 256} {
		x, y := benchPair(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Add(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{8, 64, 128} {
		x, y := benchPair(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Mul(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInverse2x2(b *testing.B) {
	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Inverse(m); err != nil {
			b.Fatal(err)
		}
	}
}

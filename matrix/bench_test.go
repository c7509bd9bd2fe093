// SPDX-License-Identifier: MIT
// Package matrix_test - micro-benchmarks for the word-parallel kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gf2/matrix"
)

// benchDense builds an n×n pattern-filled matrix outside the timed loop.
func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if (i*31+j*17)%3 == 0 {
				if err = m.Set(i, j, 1); err != nil {
					b.Fatalf("Set: %v", err)
				}
			}
		}
	}

	return m
}

func BenchmarkAdd256(b *testing.B) {
	x := benchDense(b, 256)
	y := benchDense(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul128(b *testing.B) {
	x := benchDense(b, 128)
	y := benchDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEliminate256(b *testing.B) {
	m := benchDense(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := matrix.Eliminate(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRank512(b *testing.B) {
	m := benchDense(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Rank(m); err != nil {
			b.Fatal(err)
		}
	}
}

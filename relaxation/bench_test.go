// SPDX-License-Identifier: MIT

package relaxation_test

import (
	"testing"

	"github.com/katalvlaran/relax/gallery"
	"github.com/katalvlaran/relax/relaxation"
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// benchmarkSmoother runs smooth on the five-point Laplacian of a side×side
// grid, restarting from a zero iterate each round.
func benchmarkSmoother(b *testing.B, side int, smooth func(a sparse.Matrix[float64], x, rhs []float64) error) {
	a, err := gallery.Poisson2D[float64](side, side)
	if err != nil {
		b.Fatalf("Poisson2D failed: %v", err)
	}
	n, _ := a.Dims()
	rhs := gallery.Ones[float64](n)
	x := make([]float64, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(x)
		if err = smooth(a, x, rhs); err != nil {
			b.Fatalf("smoother failed: %v", err)
		}
	}
}

func BenchmarkGaussSeidel_Symmetric(b *testing.B) {
	benchmarkSmoother(b, 64, func(a sparse.Matrix[float64], x, rhs []float64) error {
		return relaxation.GaussSeidel(a, x, rhs, relaxation.WithSweep(sweep.Symmetric))
	})
}

func BenchmarkSOR(b *testing.B) {
	benchmarkSmoother(b, 64, func(a sparse.Matrix[float64], x, rhs []float64) error {
		return relaxation.SOR(a, x, rhs, 1.5)
	})
}

func BenchmarkJacobi(b *testing.B) {
	benchmarkSmoother(b, 64, func(a sparse.Matrix[float64], x, rhs []float64) error {
		return relaxation.Jacobi(a, x, rhs, relaxation.WithOmega(0.8))
	})
}

func BenchmarkPolynomial_Cubic(b *testing.B) {
	coeffs := []float64{-0.01, 0.1, -0.3, 0.5}
	benchmarkSmoother(b, 64, func(a sparse.Matrix[float64], x, rhs []float64) error {
		return relaxation.Polynomial(a, x, rhs, coeffs)
	})
}

func BenchmarkKaczmarzGaussSeidel(b *testing.B) {
	benchmarkSmoother(b, 64, func(a sparse.Matrix[float64], x, rhs []float64) error {
		return relaxation.KaczmarzGaussSeidel(a, x, rhs)
	})
}

// BenchmarkBlockGaussSeidel uses 4×4 blocks of the 1-D operator.
func BenchmarkBlockGaussSeidel(b *testing.B) {
	a, err := gallery.BlockPoisson1D[float64](1024, 4)
	if err != nil {
		b.Fatalf("BlockPoisson1D failed: %v", err)
	}
	rhs := gallery.Ones[float64](4096)
	x := make([]float64, 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(x)
		if err = relaxation.GaussSeidel[float64](a, x, rhs); err != nil {
			b.Fatalf("GaussSeidel failed: %v", err)
		}
	}
}

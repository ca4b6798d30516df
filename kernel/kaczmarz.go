// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/relax/internal/vecops"
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// KaczmarzJacobi applies one simultaneous row-action correction on the
// normal equations A·Aᴴ·y = b, x = Aᴴ·y:
//
//	temp ← 0
//	temp_j += ω · conj(A_ij) · delta_i   for every stored A_ij, i in r
//	x ← x + temp
//
// delta is computed by the caller from the pre-step x (scaled by Dinv for
// the Jacobi variant, unscaled for the Richardson variant). temp is scratch
// of length len(x).
func KaczmarzJacobi[T sparse.Scalar](a *sparse.CSR[T], x, delta, temp []T, r sweep.Range, omega T) {
	vecops.Fill(temp, 0)

	var (
		cplx   = sparse.DTypeOf[T]().IsComplex()
		i, jj  int
		v      T
		indptr = a.Indptr
	)
	for i = r.Start; i != r.Stop; i += r.Step {
		for jj = indptr[i]; jj < indptr[i+1]; jj++ {
			v = a.Data[jj]
			if cplx {
				v = sparse.Conj(v)
			}
			temp[a.Indices[jj]] += omega * v * delta[i]
		}
	}

	vecops.AddInPlace(x, temp)
}

// KaczmarzGaussSeidel performs one sequential Kaczmarz pass over the rows of r.
// For each visited row i:
//
//	δ ← (b_i − Σ_j A_ij·x_j) · Dinv_i
//	x_j += δ · conj(A_ij)   for every stored A_ij
//
// Corrections land in x immediately, so later rows of the pass see them.
func KaczmarzGaussSeidel[T sparse.Scalar](a *sparse.CSR[T], x, b, dinv []T, r sweep.Range) {
	var (
		cplx   = sparse.DTypeOf[T]().IsComplex()
		i, jj  int
		delta  T
		v      T
		indptr = a.Indptr
	)
	for i = r.Start; i != r.Stop; i += r.Step {
		delta = 0
		for jj = indptr[i]; jj < indptr[i+1]; jj++ {
			delta += a.Data[jj] * x[a.Indices[jj]]
		}
		delta = (b[i] - delta) * dinv[i]
		for jj = indptr[i]; jj < indptr[i+1]; jj++ {
			v = a.Data[jj]
			if cplx {
				v = sparse.Conj(v)
			}
			x[a.Indices[jj]] += delta * v
		}
	}
}

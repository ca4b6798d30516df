// SPDX-License-Identifier: MIT

package kernel

import (
	"math/cmplx"

	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// BlockGaussSeidel performs one block Gauss-Seidel pass over the block rows
// of r. For every visited block row i it solves the dense R×R system
//
//	A_ii · x_i = b_i − Σ_{j≠i} A_ij·x_j
//
// and writes the solution into x[i*R:(i+1)*R] before moving on, so later
// block rows in the same pass see it.
//
// Implementation:
//   - Stage 1: accumulate the off-diagonal block products into a length-R sum.
//   - Stage 2: copy the diagonal block (last stored wins, zero block if none).
//   - Stage 3: LU with partial pivoting on the copy, then forward/back substitution.
//
// A singular or missing diagonal block produces non-finite values; nothing
// is trapped. With R == 1 the arithmetic is identical to GaussSeidel.
//
// Inputs are trusted: a is square with R == C, vectors have length a.Rows and
// r is expressed in block rows.
func BlockGaussSeidel[T sparse.Scalar](a *sparse.BSR[T], x, b []T, r sweep.Range) {
	var (
		rr          = a.R
		rr2         = rr * rr
		rsum        = make([]T, rr)
		blk         = make([]T, rr2)
		piv         = make([]int, rr)
		i, j, jj, p int
		q, row, col int
		diag        []T
		sum         T
	)
	for i = r.Start; i != r.Stop; i += r.Step {
		row = i * rr

		// Stage 1: off-diagonal contributions.
		for p = 0; p < rr; p++ {
			rsum[p] = 0
		}
		diag = nil
		for jj = a.Indptr[i]; jj < a.Indptr[i+1]; jj++ {
			j = a.Indices[jj]
			if j == i {
				diag = a.Data[jj*rr2 : (jj+1)*rr2]
				continue
			}
			col = j * rr
			for p = 0; p < rr; p++ {
				sum = 0
				for q = 0; q < rr; q++ {
					sum += a.Data[jj*rr2+p*rr+q] * x[col+q]
				}
				rsum[p] += sum
			}
		}
		for p = 0; p < rr; p++ {
			rsum[p] = b[row+p] - rsum[p]
		}

		// Stage 2: private copy of the diagonal block.
		if diag == nil {
			for p = range blk {
				blk[p] = 0
			}
		} else {
			copy(blk, diag)
		}

		// Stage 3: solve in place; rsum becomes the new x_i.
		solveDense(blk, rsum, piv, rr)
		copy(x[row:row+rr], rsum)
	}
}

// solveDense overwrites rhs with the solution of M·y = rhs, where M is the
// n×n row-major matrix in m. m is destroyed. Partial pivoting selects the
// entry of largest modulus in each column; a zero pivot divides by zero.
func solveDense[T sparse.Scalar](m, rhs []T, piv []int, n int) {
	var (
		i, k, p, best int
		bestAbs, v    float64
		f, s          T
	)

	// Doolittle elimination with row swaps recorded in piv.
	for k = 0; k < n; k++ {
		best, bestAbs = k, modulus(m[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = modulus(m[i*n+k]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		piv[k] = best
		if best != k {
			for p = 0; p < n; p++ {
				m[k*n+p], m[best*n+p] = m[best*n+p], m[k*n+p]
			}
		}
		for i = k + 1; i < n; i++ {
			f = m[i*n+k] / m[k*n+k]
			m[i*n+k] = f
			for p = k + 1; p < n; p++ {
				m[i*n+p] -= f * m[k*n+p]
			}
		}
	}

	// Apply the row swaps to rhs, then forward substitution with unit L.
	for k = 0; k < n; k++ {
		if piv[k] != k {
			rhs[k], rhs[piv[k]] = rhs[piv[k]], rhs[k]
		}
	}
	for i = 1; i < n; i++ {
		s = rhs[i]
		for k = 0; k < i; k++ {
			s -= m[i*n+k] * rhs[k]
		}
		rhs[i] = s
	}

	// Back substitution with U.
	for i = n - 1; i >= 0; i-- {
		s = rhs[i]
		for k = i + 1; k < n; k++ {
			s -= m[i*n+k] * rhs[k]
		}
		rhs[i] = s / m[i*n+i]
	}
}

// modulus returns |v| as float64 for pivot selection.
func modulus[T sparse.Scalar](v T) float64 {
	switch z := any(v).(type) {
	case float32:
		if z < 0 {
			return float64(-z)
		}
		return float64(z)
	case float64:
		if z < 0 {
			return -z
		}
		return z
	case complex64:
		return cmplx.Abs(complex128(z))
	case complex128:
		return cmplx.Abs(z)
	}

	return 0
}

// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// GaussSeidel performs one point Gauss-Seidel pass over the rows of r:
//
//	x_i ← (b_i − Σ_{j≠i} A_ij·x_j) / A_ii
//
// Behavior highlights:
//   - x is read and written in place; a row visited later in the pass sees
//     every value written earlier in the same pass.
//   - A_ii is the last stored entry of row i whose column equals i. With no
//     such entry the division is by zero and the result is non-finite.
//
// Inputs are trusted: a is square and valid, len(x) == len(b) == rows, and
// r covers [0, rows).
func GaussSeidel[T sparse.Scalar](a *sparse.CSR[T], x, b []T, r sweep.Range) {
	var (
		i, j, jj   int
		rsum, diag T
		indptr     = a.Indptr
		indices    = a.Indices
		data       = a.Data
	)
	for i = r.Start; i != r.Stop; i += r.Step {
		rsum, diag = 0, 0
		for jj = indptr[i]; jj < indptr[i+1]; jj++ {
			j = indices[jj]
			if j == i {
				diag = data[jj]
			} else {
				rsum += data[jj] * x[j]
			}
		}
		x[i] = (b[i] - rsum) / diag
	}
}

// GaussSeidelIndexed performs one Gauss-Seidel pass in which position k of r
// relaxes row rows[k]. rows may repeat entries and need not cover every row;
// the update rule is the one of GaussSeidel.
//
// Inputs are trusted: every rows[k] lies in [0, n) and r covers [0, len(rows)).
func GaussSeidelIndexed[T sparse.Scalar](a *sparse.CSR[T], x, b []T, rows []int, r sweep.Range) {
	var (
		i, j, jj, k int
		rsum, diag  T
		indptr      = a.Indptr
		indices     = a.Indices
		data        = a.Data
	)
	for k = r.Start; k != r.Stop; k += r.Step {
		i = rows[k]
		rsum, diag = 0, 0
		for jj = indptr[i]; jj < indptr[i+1]; jj++ {
			j = indices[jj]
			if j == i {
				diag = data[jj]
			} else {
				rsum += data[jj] * x[j]
			}
		}
		x[i] = (b[i] - rsum) / diag
	}
}

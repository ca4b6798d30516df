// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// Jacobi performs one weighted Jacobi step over the rows of r:
//
//	temp ← x
//	x_i  ← temp_i + ω·(b_i − Σ_j A_ij·temp_j) / A_ii
//
// Every row reads only the snapshot temp, never a value written in this step.
// The diagonal is located as in GaussSeidel. temp must have length len(x)
// and must not alias x.
func Jacobi[T sparse.Scalar](a *sparse.CSR[T], x, b, temp []T, r sweep.Range, omega T) {
	copy(temp, x)

	var (
		i, j, jj  int
		sum, diag T
		indptr    = a.Indptr
		indices   = a.Indices
		data      = a.Data
	)
	for i = r.Start; i != r.Stop; i += r.Step {
		sum, diag = 0, 0
		for jj = indptr[i]; jj < indptr[i+1]; jj++ {
			j = indices[jj]
			if j == i {
				diag = data[jj]
			}
			sum += data[jj] * temp[j]
		}
		x[i] = temp[i] + omega*((b[i]-sum)/diag)
	}
}

// SPDX-License-Identifier: MIT

package gallery

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relax/sparse"
)

// ErrBadSize is returned when a dimension is below its minimum of 1.
var ErrBadSize = errors.New("gallery: dimension must be ≥ 1")

// File-local constants: method tags and the minimum dimension.
const (
	methodPoisson1D      = "Poisson1D"
	methodPoisson2D      = "Poisson2D"
	methodBlockPoisson1D = "BlockPoisson1D"
	minDim               = 1
)

// Poisson1D returns the n×n second-difference matrix tridiag(-1, 2, -1) in
// CSR form with ascending column indices.
func Poisson1D[T sparse.Scalar](n int) (*sparse.CSR[T], error) {
	if n < minDim {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPoisson1D, n, ErrBadSize)
	}

	indptr := make([]int, 0, n+1)
	indices := make([]int, 0, 3*n)
	data := make([]T, 0, 3*n)
	indptr = append(indptr, 0)
	for i := 0; i < n; i++ {
		if i > 0 {
			indices, data = append(indices, i-1), append(data, -1)
		}
		indices, data = append(indices, i), append(data, 2)
		if i+1 < n {
			indices, data = append(indices, i+1), append(data, -1)
		}
		indptr = append(indptr, len(indices))
	}

	return sparse.NewCSR(n, n, indptr, indices, data)
}

// Poisson2D returns the five-point Laplacian of a rows×cols grid: 4 on the
// diagonal and -1 for each orthogonal neighbour. Unknowns are numbered in
// row-major order, cell (r, c) ↦ r*cols + c, and every row lists its columns
// ascending (up, left, self, right, down).
func Poisson2D[T sparse.Scalar](rows, cols int) (*sparse.CSR[T], error) {
	if rows < minDim || cols < minDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodPoisson2D, rows, cols, ErrBadSize)
	}

	n := rows * cols
	indptr := make([]int, 0, n+1)
	indices := make([]int, 0, 5*n)
	data := make([]T, 0, 5*n)
	indptr = append(indptr, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if r > 0 {
				indices, data = append(indices, i-cols), append(data, -1)
			}
			if c > 0 {
				indices, data = append(indices, i-1), append(data, -1)
			}
			indices, data = append(indices, i), append(data, 4)
			if c+1 < cols {
				indices, data = append(indices, i+1), append(data, -1)
			}
			if r+1 < rows {
				indices, data = append(indices, i+cols), append(data, -1)
			}
			indptr = append(indptr, len(indices))
		}
	}

	return sparse.NewCSR(n, n, indptr, indices, data)
}

// BlockPoisson1D returns Poisson1D of order blocks*r stored as BSR with r×r
// blocks. With r = 1 it holds exactly the entries of Poisson1D(blocks).
func BlockPoisson1D[T sparse.Scalar](blocks, r int) (*sparse.BSR[T], error) {
	if blocks < minDim || r < minDim {
		return nil, fmt.Errorf("%s: blocks=%d, r=%d: %w", methodBlockPoisson1D, blocks, r, ErrBadSize)
	}
	p, err := Poisson1D[T](blocks * r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBlockPoisson1D, err)
	}
	b, err := p.ToBSR(r, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBlockPoisson1D, err)
	}

	return b, nil
}

// Ones returns a vector of n ones, the usual right-hand side of a smoke run.
func Ones[T sparse.Scalar](n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

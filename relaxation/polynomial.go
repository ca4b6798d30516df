// SPDX-License-Identifier: MIT

package relaxation

import (
	"fmt"

	"github.com/katalvlaran/relax/internal/vecops"
	"github.com/katalvlaran/relax/sparse"
)

// Polynomial applies x ← x + p(A)·(b − A·x) once per iteration, where
// p(A) = c₀·A^{m-1} + … + c_{m-1} is evaluated by Horner's rule over
// coefficients (most significant first):
//
//	r ← b − A·x      (r ← b when every element of x is exactly zero)
//	h ← c₀·r
//	h ← c·r + A·h    for each remaining c
//	x ← x + h
//
// The zero test is exact (== 0 per element), never a tolerance. Any storage
// kind is accepted as is. Chebyshev smoothing is obtained by passing the
// Chebyshev coefficients.
//
// Errors: ErrInvalidConfig for an empty coefficient list, in addition to the
// shape and option errors of every smoother.
func Polynomial[T sparse.Scalar](a sparse.Matrix[T], x, b []T, coefficients []T, opts ...Option) error {
	const tag = "Polynomial"

	o, err := gatherOptions(opts)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	if len(coefficients) == 0 {
		return relaxErrorf(tag, fmt.Errorf("empty coefficient list: %w", ErrInvalidConfig), nil)
	}
	sys, err := newSystem(a, x, b)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}

	var (
		n   = len(sys.X)
		r   = make([]T, n)
		h   = make([]T, n)
		ah  = make([]T, n)
		c   T
		it  int
		aop = sys.A
	)
	for it = 0; it < o.Iterations; it++ {
		if vecops.IsZero(sys.X) {
			copy(r, sys.B)
		} else if err = sparse.Residual(aop, r, sys.X, sys.B); err != nil {
			return relaxErrorf(tag, ErrInvalidArgument, err)
		}

		vecops.Scale(h, r, coefficients[0])
		for _, c = range coefficients[1:] {
			if err = sparse.MatVec(aop, ah, h); err != nil {
				return relaxErrorf(tag, ErrInvalidArgument, err)
			}
			vecops.Scale(h, r, c)
			vecops.AddInPlace(h, ah)
		}

		vecops.AddInPlace(sys.X, h)
	}

	return nil
}

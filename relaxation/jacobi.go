// SPDX-License-Identifier: MIT

package relaxation

import (
	"github.com/katalvlaran/relax/kernel"
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// Jacobi performs weighted Jacobi iteration on A·x = b, updating x in place:
//
//	x ← x + ω·D⁻¹·(b − A·x)
//
// Every row of an iteration reads the iterate as it was before that
// iteration. The operator is converted to CSR when needed; ω comes from
// WithOmega / WithComplexOmega (default 1).
func Jacobi[T sparse.Scalar](a sparse.Matrix[T], x, b []T, opts ...Option) error {
	const tag = "Jacobi"

	o, err := gatherOptions(opts)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	sys, err := newSystem(a, x, b, sparse.FormatCSR)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	omega, err := omegaAs[T](o)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}

	r, _ := sweep.Span(sweep.Forward, sys.N())
	if r.Empty() {
		return nil
	}

	m := sys.A.(*sparse.CSR[T])
	temp := make([]T, len(sys.X))
	for it := 0; it < o.Iterations; it++ {
		kernel.Jacobi(m, sys.X, sys.B, temp, r, omega)
	}

	return nil
}

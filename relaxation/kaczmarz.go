// SPDX-License-Identifier: MIT

package relaxation

import (
	"github.com/katalvlaran/relax/internal/vecops"
	"github.com/katalvlaran/relax/kernel"
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// The Kaczmarz family relaxes the normal equations A·Aᴴ·y = b, x = Aᴴ·y,
// without forming A·Aᴴ. All three variants run on CSR storage and compute
// Dinv_i = 1 / Σ_j |A_ij|² afresh on every call; a zero row gives a
// non-finite Dinv_i that propagates.

// KaczmarzJacobi performs Kaczmarz Jacobi iteration (also known as Cimmino
// relaxation). Each iteration computes
//
//	delta ← (b − A·x) ⊙ Dinv
//	x     ← x + ω · Aᴴ·delta
//
// with every row reading the same pre-iteration delta. ω comes from
// WithOmega / WithComplexOmega (default 1).
func KaczmarzJacobi[T sparse.Scalar](a sparse.Matrix[T], x, b []T, opts ...Option) error {
	return kaczmarzSimultaneous("KaczmarzJacobi", a, x, b, true, opts)
}

// KaczmarzRichardson performs Kaczmarz Richardson iteration: the same update
// as KaczmarzJacobi without the Dinv row scaling,
//
//	x ← x + ω · Aᴴ·(b − A·x)
//
// ω must be small enough for the unnormalized step to contract.
func KaczmarzRichardson[T sparse.Scalar](a sparse.Matrix[T], x, b []T, opts ...Option) error {
	return kaczmarzSimultaneous("KaczmarzRichardson", a, x, b, false, opts)
}

func kaczmarzSimultaneous[T sparse.Scalar](tag string, a sparse.Matrix[T], x, b []T, scale bool, opts []Option) error {
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

	var (
		m     = sys.A.(*sparse.CSR[T])
		n     = sys.N()
		r, _  = sweep.Span(sweep.Forward, n)
		delta = make([]T, n)
		temp  = make([]T, n)
		dinv  []T
	)
	if scale {
		dinv = sparse.InvRowNormsSquared(m)
	}
	for it := 0; it < o.Iterations; it++ {
		if err = m.Residual(delta, sys.X, sys.B); err != nil {
			return relaxErrorf(tag, ErrInvalidArgument, err)
		}
		if scale {
			vecops.MulInPlace(delta, dinv)
		}
		kernel.KaczmarzJacobi(m, sys.X, delta, temp, r, omega)
	}

	return nil
}

// KaczmarzGaussSeidel performs Kaczmarz Gauss-Seidel iteration: for each row
// i visited by the sweep,
//
//	x ← x + Dinv_i · (b_i − A_i·x) · A_iᴴ
//
// applied immediately, so later rows of the pass see the correction. Sweep
// directions compose exactly as for GaussSeidel.
func KaczmarzGaussSeidel[T sparse.Scalar](a sparse.Matrix[T], x, b []T, opts ...Option) error {
	const tag = "KaczmarzGaussSeidel"

	o, err := gatherOptions(opts)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	sys, err := newSystem(a, x, b, sparse.FormatCSR)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	passes, err := sweep.Plan(o.Sweep, o.Iterations, sys.N())
	if err != nil {
		return relaxErrorf(tag, ErrInvalidConfig, err)
	}

	m := sys.A.(*sparse.CSR[T])
	dinv := sparse.InvRowNormsSquared(m)
	for _, p := range passes {
		kernel.KaczmarzGaussSeidel(m, sys.X, sys.B, dinv, p)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package relaxation

import (
	"fmt"

	"github.com/katalvlaran/relax/internal/vecops"
	"github.com/katalvlaran/relax/kernel"
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// GaussSeidel performs Gauss-Seidel iteration on A·x = b, updating x in place.
//
// Implementation:
//   - Stage 1: resolve options (WithIterations, WithSweep / WithSweepName).
//   - Stage 2: validate the system; CSR and BSR run natively, COO is converted to CSR.
//   - Stage 3: expand the sweep into passes (symmetric k = k × forward+backward)
//     and run the point kernel (CSR) or the block kernel (BSR, block rows).
//
// Behavior highlights:
//   - Immediate reuse: a row sees every value written earlier in the same pass.
//   - A missing diagonal is not an error; the non-finite result propagates.
//
// Errors: ErrShapeMismatch, ErrInvalidConfig (bad options, R ≠ C blocks),
// ErrInvalidArgument for a nil or malformed operator. No error leaves x modified.
//
// Complexity: O(passes · nnz) time; O(R²) extra memory for BSR.
func GaussSeidel[T sparse.Scalar](a sparse.Matrix[T], x, b []T, opts ...Option) error {
	const tag = "GaussSeidel"

	o, err := gatherOptions(opts)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	sys, err := newSystem(a, x, b, sparse.FormatCSR, sparse.FormatBSR)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	if err = gaussSeidel(sys, o.Sweep, o.Iterations); err != nil {
		return relaxErrorf(tag, err, nil)
	}

	return nil
}

// gaussSeidel plans and runs the passes for a CSR or BSR system.
// All validation happens before the first pass.
func gaussSeidel[T sparse.Scalar](sys *System[T], d sweep.Direction, iterations int) error {
	switch m := sys.A.(type) {
	case *sparse.CSR[T]:
		passes, err := sweep.Plan(d, iterations, sys.N())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for _, p := range passes {
			kernel.GaussSeidel(m, sys.X, sys.B, p)
		}
	case *sparse.BSR[T]:
		r, c := m.BlockSize()
		if r != c {
			return fmt.Errorf("BSR blocks must be square, got %d×%d: %w", r, c, ErrInvalidConfig)
		}
		passes, err := sweep.Plan(d, iterations, m.BlockRows())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for _, p := range passes {
			kernel.BlockGaussSeidel(m, sys.X, sys.B, p)
		}
	default:
		return fmt.Errorf("%s storage: %w", sys.A.Format(), ErrInvalidConfig)
	}

	return nil
}

// SOR performs successive over-relaxation on A·x = b, updating x in place.
// Each iteration runs one Gauss-Seidel sweep in the configured direction (a
// symmetric sweep is one forward and one backward pass) and then blends
//
//	x ← ω·x_GS + (1−ω)·x_old
//
// as three separately rounded steps: x *= ω, x_old *= 1−ω, x += x_old.
// ω = 1 reproduces GaussSeidel.
//
// Accepts the same options and storage as GaussSeidel; WithOmega is ignored
// in favour of the explicit omega.
func SOR[T sparse.Scalar](a sparse.Matrix[T], x, b []T, omega T, opts ...Option) error {
	const tag = "SOR"

	o, err := gatherOptions(opts)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	sys, err := newSystem(a, x, b, sparse.FormatCSR, sparse.FormatBSR)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	// Dry-run the plan so a bad block shape fails before x changes.
	if err = gaussSeidel(sys, o.Sweep, 0); err != nil {
		return relaxErrorf(tag, err, nil)
	}

	xOld := make([]T, len(sys.X))
	for it := 0; it < o.Iterations; it++ {
		copy(xOld, sys.X)
		if err = gaussSeidel(sys, o.Sweep, 1); err != nil {
			return relaxErrorf(tag, err, nil)
		}
		vecops.ScaleInPlace(sys.X, omega)
		vecops.ScaleInPlace(xOld, 1-omega)
		vecops.AddInPlace(sys.X, xOld)
	}

	return nil
}

// GaussSeidelIndexed performs Gauss-Seidel iteration on A·x = b, visiting
// rows in the order given by indices instead of 0..n-1.
//
// indices may repeat rows and need not cover all of them; only the listed
// rows change. A backward sweep walks indices in reverse and a symmetric
// sweep walks it forward then in reverse. BSR and COO operators are
// converted to CSR.
//
// Errors: ErrShapeMismatch when an index lies outside [0, n), in addition to
// the errors of GaussSeidel.
func GaussSeidelIndexed[T sparse.Scalar](a sparse.Matrix[T], x, b []T, indices []int, opts ...Option) error {
	const tag = "GaussSeidelIndexed"

	o, err := gatherOptions(opts)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	sys, err := newSystem(a, x, b, sparse.FormatCSR)
	if err != nil {
		return relaxErrorf(tag, err, nil)
	}
	n := sys.N()
	for k, i := range indices {
		if i < 0 || i >= n {
			return relaxErrorf(tag, fmt.Errorf("indices[%d] = %d outside [0, %d): %w", k, i, n, ErrShapeMismatch), nil)
		}
	}
	passes, err := sweep.Plan(o.Sweep, o.Iterations, len(indices))
	if err != nil {
		return relaxErrorf(tag, ErrInvalidConfig, err)
	}

	m := sys.A.(*sparse.CSR[T])
	for _, p := range passes {
		kernel.GaussSeidelIndexed(m, sys.X, sys.B, indices, p)
	}

	return nil
}

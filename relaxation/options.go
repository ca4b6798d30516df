// SPDX-License-Identifier: MIT

// Package relaxation: functional options shared by every smoother.
//
// Notes:
//   - Options a smoother does not use are accepted and ignored, so one option
//     list can drive several smoothers.
//   - Invalid values never panic. The first violation is recorded inside
//     Options and returned as ErrInvalidConfig when the smoother is invoked,
//     before x is touched.
//   - The damping factor is stored as complex128 and converted to the
//     operator's element type per call; a non-zero imaginary part with real
//     data is an ErrTypeMismatch.

package relaxation

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIterations is the number of iterations (or sweeps) per call.
	DefaultIterations = 1

	// DefaultSweep is the traversal direction of sequential kernels.
	DefaultSweep = sweep.Forward

	// DefaultOmega is the damping factor of Jacobi and the Kaczmarz
	// simultaneous variants.
	DefaultOmega = 1.0
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved per-call configuration.
type Options struct {
	// Iterations is the number of outer iterations; 0 leaves x untouched.
	Iterations int

	// Sweep is the traversal direction of Gauss-Seidel style kernels.
	Sweep sweep.Direction

	// Omega is the damping factor before conversion to the element type.
	Omega complex128

	// err holds the first invalid option seen.
	err error
}

// DefaultOptions returns one forward iteration with ω = 1.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Sweep:      DefaultSweep,
		Omega:      complex(DefaultOmega, 0),
	}
}

// WithIterations sets the iteration count. k < 0 is recorded as an error.
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.fail(fmt.Errorf("WithIterations(%d): %w", k, sweep.ErrNegativeIterations))
			return
		}
		o.Iterations = k
	}
}

// WithSweep sets the traversal direction.
func WithSweep(d sweep.Direction) Option {
	return func(o *Options) {
		if d > sweep.Symmetric {
			o.fail(fmt.Errorf("WithSweep(%s): %w", d, sweep.ErrUnknownDirection))
			return
		}
		o.Sweep = d
	}
}

// WithSweepName sets the traversal direction from its symbol:
// "forward", "backward" or "symmetric".
func WithSweepName(name string) Option {
	return func(o *Options) {
		d, err := sweep.ParseDirection(name)
		if err != nil {
			o.fail(fmt.Errorf("WithSweepName: %w", err))
			return
		}
		o.Sweep = d
	}
}

// WithOmega sets a real damping factor. Non-finite values are recorded as an error.
func WithOmega(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			o.fail(fmt.Errorf("WithOmega(%v): omega must be finite", w))
			return
		}
		o.Omega = complex(w, 0)
	}
}

// WithComplexOmega sets a complex damping factor. Only complex operators
// accept a non-zero imaginary part.
func WithComplexOmega(w complex128) Option {
	return func(o *Options) {
		if cmplx.IsNaN(w) || cmplx.IsInf(w) {
			o.fail(fmt.Errorf("WithComplexOmega(%v): omega must be finite", w))
			return
		}
		o.Omega = w
	}
}

// fail keeps the first recorded violation.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// gatherOptions applies opts over the defaults and reports the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, fmt.Errorf("%w: %w", ErrInvalidConfig, o.err)
	}

	return o, nil
}

// omegaAs converts the configured damping factor to T.
func omegaAs[T sparse.Scalar](o Options) (T, error) {
	w, ok := sparse.FromComplex[T](o.Omega)
	if !ok {
		return w, fmt.Errorf("omega %v for %s data: %w", o.Omega, sparse.DTypeOf[T](), ErrTypeMismatch)
	}

	return w, nil
}

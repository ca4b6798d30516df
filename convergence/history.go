// SPDX-License-Identifier: MIT

package convergence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/relax/sparse"
)

// History accumulates the residual norms of an iteration, one per step,
// starting with the norm of the initial residual.
//
// The zero value is ready to use.
type History struct {
	norms []float64
}

// Record appends the residual norm of the latest iterate.
func (h *History) Record(norm float64) error {
	if math.IsNaN(norm) || norm < 0 {
		return fmt.Errorf("Record(%v): %w", norm, ErrBadNorm)
	}
	h.norms = append(h.norms, norm)

	return nil
}

// Len returns the number of recorded norms.
func (h *History) Len() int { return len(h.norms) }

// Norms returns a copy of the recorded norms.
func (h *History) Norms() []float64 { return append([]float64(nil), h.norms...) }

// Last returns the most recent norm, or 0 for an empty history.
func (h *History) Last() float64 {
	if len(h.norms) == 0 {
		return 0
	}

	return h.norms[len(h.norms)-1]
}

// Factors returns the per-step reduction factors r_{k+1} / r_k.
func (h *History) Factors() ([]float64, error) {
	if len(h.norms) < 2 {
		return nil, fmt.Errorf("Factors: %d norms: %w", len(h.norms), ErrShortHistory)
	}
	out := make([]float64, len(h.norms)-1)
	floats.DivTo(out, h.norms[1:], h.norms[:len(h.norms)-1])

	return out, nil
}

// ArithmeticMean returns the mean of Factors.
func (h *History) ArithmeticMean() (float64, error) {
	f, err := h.Factors()
	if err != nil {
		return 0, fmt.Errorf("ArithmeticMean: %w", err)
	}

	return stat.Mean(f, nil), nil
}

// GeometricMean returns the average convergence factor
// (r_last / r_0)^(1 / Len()).
func (h *History) GeometricMean() (float64, error) {
	if len(h.norms) < 2 {
		return 0, fmt.Errorf("GeometricMean: %d norms: %w", len(h.norms), ErrShortHistory)
	}

	return math.Pow(h.Last()/h.norms[0], 1/float64(len(h.norms))), nil
}

// WorkPerDigit estimates the work, in units of one fine-level matrix-vector
// product, needed to reduce the residual tenfold: −cycleComplexity / log10(g)
// with g the geometric mean factor. A stagnating history (g ≥ 1) yields +Inf
// or a negative value; callers should check the factor first.
func (h *History) WorkPerDigit(cycleComplexity float64) (float64, error) {
	g, err := h.GeometricMean()
	if err != nil {
		return 0, fmt.Errorf("WorkPerDigit: %w", err)
	}

	return -cycleComplexity / math.Log10(g), nil
}

// ResidualNorm returns ‖b − A·x‖₂ for any storage kind and element type.
func ResidualNorm[T sparse.Scalar](a sparse.Matrix[T], x, b []T) (float64, error) {
	if err := sparse.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("ResidualNorm: %w", err)
	}
	r := make([]T, len(b))
	if err := sparse.Residual(a, r, x, b); err != nil {
		return 0, fmt.Errorf("ResidualNorm: %w", err)
	}
	if rf, ok := any(r).([]float64); ok {
		return floats.Norm(rf, 2), nil
	}

	s := make([]float64, len(r))
	for i, v := range r {
		c := sparse.ToComplex(v)
		s[i] = math.Hypot(real(c), imag(c))
	}

	return floats.Norm(s, 2), nil
}

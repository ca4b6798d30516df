// SPDX-License-Identifier: MIT

package convergence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/relax/relaxation"
	"github.com/katalvlaran/relax/sparse"
)

// Level summarizes one level of a multigrid hierarchy, finest first.
type Level struct {
	// NNZ and Unknowns describe the level operator.
	NNZ      int
	Unknowns int

	// ProlongationNNZ and RestrictionNNZ describe the transfer operators to
	// the next coarser level; they are ignored on the coarsest level.
	ProlongationNNZ int
	RestrictionNNZ  int

	// Smoothing is the combined pre- and post-smoother cost in sweeps over
	// this level's operator, as given by relaxation.Pair.WorkFactor. Zero
	// means the level is not smoothed.
	Smoothing float64
}

// NewLevel describes the operator a smoothed by p. The transfer operator
// sizes are left for the caller.
func NewLevel[T sparse.Scalar](a sparse.Matrix[T], p relaxation.Pair) Level {
	rows, _ := a.Dims()

	return Level{NNZ: a.NNZ(), Unknowns: rows, Smoothing: p.WorkFactor()}
}

// Hierarchy is the ordered list of levels, finest first.
type Hierarchy []Level

// OperatorComplexity returns Σ NNZ over all levels / NNZ of the finest level.
func (h Hierarchy) OperatorComplexity() (float64, error) {
	if err := h.check("OperatorComplexity"); err != nil {
		return 0, err
	}
	total := 0
	for _, l := range h {
		total += l.NNZ
	}

	return float64(total) / float64(h[0].NNZ), nil
}

// GridComplexity returns Σ Unknowns over all levels / Unknowns of the finest level.
func (h Hierarchy) GridComplexity() (float64, error) {
	if err := h.check("GridComplexity"); err != nil {
		return 0, err
	}
	total := 0
	for _, l := range h {
		total += l.Unknowns
	}

	return float64(total) / float64(h[0].Unknowns), nil
}

// Cycle is the recursion shape of one multigrid cycle.
type Cycle uint8

const (
	VCycle Cycle = iota
	WCycle
	FCycle
)

func (c Cycle) String() string {
	switch c {
	case VCycle:
		return "V"
	case WCycle:
		return "W"
	case FCycle:
		return "F"
	}

	return fmt.Sprintf("Cycle(%d)", uint8(c))
}

// ParseCycle accepts "V", "W", "F" and "AMLI" (costed as W), in any case.
func ParseCycle(s string) (Cycle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "V":
		return VCycle, nil
	case "W", "AMLI":
		return WCycle, nil
	case "F":
		return FCycle, nil
	}

	return 0, fmt.Errorf("ParseCycle(%q): %w", s, ErrUnknownCycle)
}

// CycleComplexity estimates the cost of one cycle relative to one
// matrix-vector product with the finest operator. Every level but the
// coarsest contributes its smoothing, Smoothing·NNZ_i, plus the residual,
// restriction and prolongation products; the coarse solve is free.
//
//	V(i) = cost_i + V(i+1)
//	W(i) = cost_i + 2·W(i+1)
//	F(i) = cost_i + F(i+1) + V(i+1)
//
// A single-level hierarchy costs 1.
func (h Hierarchy) CycleComplexity(c Cycle) (float64, error) {
	if err := h.check("CycleComplexity"); err != nil {
		return 0, err
	}
	if c > FCycle {
		return 0, fmt.Errorf("CycleComplexity: %s: %w", c, ErrUnknownCycle)
	}
	if len(h) == 1 {
		return 1, nil
	}

	fine := float64(h[0].NNZ)
	cost := make([]float64, len(h)-1)
	for i, l := range h[:len(h)-1] {
		a := float64(l.NNZ) / fine
		cost[i] = l.Smoothing*a + a + float64(l.RestrictionNNZ)/fine + float64(l.ProlongationNNZ)/fine
	}

	var v, w, f func(i int) float64
	v = func(i int) float64 {
		if i == len(cost)-1 {
			return cost[i]
		}
		return cost[i] + v(i+1)
	}
	w = func(i int) float64 {
		if i == len(cost)-1 {
			return cost[i]
		}
		return cost[i] + 2*w(i+1)
	}
	f = func(i int) float64 {
		if i == len(cost)-1 {
			return cost[i]
		}
		return cost[i] + f(i+1) + v(i+1)
	}

	switch c {
	case WCycle:
		return w(0), nil
	case FCycle:
		return f(0), nil
	}

	return v(0), nil
}

func (h Hierarchy) check(tag string) error {
	if len(h) == 0 {
		return fmt.Errorf("%s: %w", tag, ErrEmptyHierarchy)
	}
	if h[0].NNZ <= 0 || h[0].Unknowns <= 0 {
		return fmt.Errorf("%s: %w", tag, ErrEmptyFineLevel)
	}

	return nil
}

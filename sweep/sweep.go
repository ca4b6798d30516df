// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDirection is returned for a direction symbol other than
	// forward, backward or symmetric.
	ErrUnknownDirection = errors.New("sweep: valid directions are forward, backward and symmetric")

	// ErrCompositeDirection is returned by Span for Symmetric, which is a
	// pair of passes rather than a single traversal.
	ErrCompositeDirection = errors.New("sweep: symmetric is not a single pass")

	// ErrNegativeIterations is returned by Plan when iterations < 0.
	ErrNegativeIterations = errors.New("sweep: iterations must be non-negative")
)

// Direction selects the traversal order of a sequential sweep.
// The zero value is Forward.
type Direction uint8

const (
	// Forward visits 0, 1, …, n-1.
	Forward Direction = iota
	// Backward visits n-1, …, 1, 0.
	Backward
	// Symmetric performs one Forward pass immediately followed by one
	// Backward pass per iteration.
	Symmetric
)

// String returns "forward", "backward" or "symmetric".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection maps a direction symbol (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	case "symmetric":
		return Symmetric, nil
	}

	return Forward, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d > Symmetric {
		return nil, fmt.Errorf("%s: %w", d, ErrUnknownDirection)
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so configuration
// decoders accept the direction symbols directly.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Range is one directional pass over positions Start, Start+Step, … stopping
// before Stop. Step is +1 or -1.
type Range struct {
	Start, Stop, Step int
}

// Len returns the number of positions the pass visits.
func (r Range) Len() int {
	if r.Step > 0 && r.Stop > r.Start {
		return (r.Stop - r.Start + r.Step - 1) / r.Step
	}
	if r.Step < 0 && r.Start > r.Stop {
		return (r.Start - r.Stop - r.Step - 1) / -r.Step
	}

	return 0
}

// Empty reports whether the pass visits no position.
func (r Range) Empty() bool { return r.Len() == 0 }

// Positions lists the visited positions in order.
func (r Range) Positions() []int {
	out := make([]int, 0, r.Len())
	for k := r.Start; k != r.Stop && r.Step != 0; k += r.Step {
		out = append(out, k)
	}

	return out
}

// Span returns the single pass of direction d over n positions:
// Forward → {0, n, +1}, Backward → {n-1, -1, -1}.
//
// n counts whatever unit the caller sweeps over: rows for point kernels,
// block rows for block kernels, sequence positions for indexed kernels.
func Span(d Direction, n int) (Range, error) {
	switch d {
	case Forward:
		return Range{Start: 0, Stop: n, Step: 1}, nil
	case Backward:
		return Range{Start: n - 1, Stop: -1, Step: -1}, nil
	case Symmetric:
		return Range{}, ErrCompositeDirection
	}

	return Range{}, fmt.Errorf("%s: %w", d, ErrUnknownDirection)
}

// Plan expands (d, iterations) into the ordered list of single passes over n
// positions that a sequential kernel must perform:
//
//	Forward,   k → k × forward
//	Backward,  k → k × backward
//	Symmetric, k → k × (forward, backward), i.e. 2k passes
//
// iterations == 0 yields an empty plan.
func Plan(d Direction, iterations, n int) ([]Range, error) {
	if iterations < 0 {
		return nil, ErrNegativeIterations
	}

	var (
		fwd = Range{Start: 0, Stop: n, Step: 1}
		bwd = Range{Start: n - 1, Stop: -1, Step: -1}
		out []Range
		k   int
	)
	switch d {
	case Forward:
		out = make([]Range, 0, iterations)
		for k = 0; k < iterations; k++ {
			out = append(out, fwd)
		}
	case Backward:
		out = make([]Range, 0, iterations)
		for k = 0; k < iterations; k++ {
			out = append(out, bwd)
		}
	case Symmetric:
		out = make([]Range, 0, 2*iterations)
		for k = 0; k < iterations; k++ {
			out = append(out, fwd, bwd)
		}
	default:
		return nil, fmt.Errorf("%s: %w", d, ErrUnknownDirection)
	}

	return out, nil
}

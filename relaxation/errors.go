// SPDX-License-Identifier: MIT
// Package relaxation: sentinel error set.
// Every failure is a validation failure raised before the first write to x.
// Each specific kind wraps ErrInvalidArgument, so callers may match either
// the umbrella or the precise kind with errors.Is.

package relaxation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for every error returned by this package.
	ErrInvalidArgument = errors.New("relaxation: invalid argument")

	// ErrShapeMismatch signals a non-square operator, a vector whose shape is
	// neither n nor n×1, or a row index outside [0, n).
	ErrShapeMismatch = fmt.Errorf("%w: shape mismatch", ErrInvalidArgument)

	// ErrTypeMismatch signals that the operator, x and b do not share one
	// element type, or that a damping factor cannot be represented in it.
	ErrTypeMismatch = fmt.Errorf("%w: operator, x and b must share one element type", ErrInvalidArgument)

	// ErrNotContiguous signals an iterate whose elements are not adjacent in
	// memory; kernels write through it directly.
	ErrNotContiguous = fmt.Errorf("%w: x must be contiguous in memory", ErrInvalidArgument)

	// ErrInvalidConfig signals an unusable option or parameter: unknown sweep
	// direction, negative iteration count, non-square blocks, empty
	// coefficient list, unknown method or storage format.
	ErrInvalidConfig = fmt.Errorf("%w: invalid configuration", ErrInvalidArgument)
)

// relaxErrorf tags kind with the failing operation and, when cause is
// non-nil, keeps the lower-level error in the chain as well.
func relaxErrorf(tag string, kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, kind)
	}

	return fmt.Errorf("%s: %w: %w", tag, kind, cause)
}

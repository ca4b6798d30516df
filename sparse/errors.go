// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every constructor and conversion returns one of these sentinels, optionally
// tagged with the failing operation via sparseErrorf. Callers match with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or a dense value slice whose length is not rows*cols).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadStructure signals inconsistent storage arrays: indptr of the wrong
	// length, a decreasing row pointer, or index/data slices that disagree.
	ErrBadStructure = errors.New("sparse: malformed storage arrays")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand lengths, e.g. a
	// MatVec whose vectors do not match the operator.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBlockSize is returned when a block shape is non-positive or does not
	// divide the matrix dimensions.
	ErrBlockSize = errors.New("sparse: invalid block size")

	// ErrUnknownFormat is returned by ParseFormat and Convert for a storage
	// format this package does not implement.
	ErrUnknownFormat = errors.New("sparse: unknown storage format")
)

// sparseErrorf wraps err with the operation tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT

package convergence

import "errors"

var (
	// ErrEmptyHierarchy is returned by complexity measures of a hierarchy
	// without levels.
	ErrEmptyHierarchy = errors.New("convergence: hierarchy has no levels")

	// ErrEmptyFineLevel is returned when the finest level has no unknowns or
	// no stored entries, so relative measures are undefined.
	ErrEmptyFineLevel = errors.New("convergence: finest level is empty")

	// ErrUnknownCycle is returned for a cycle name other than V, W, F or AMLI.
	ErrUnknownCycle = errors.New("convergence: unknown cycle type")

	// ErrShortHistory is returned when fewer than two residual norms were recorded.
	ErrShortHistory = errors.New("convergence: need at least two residual norms")

	// ErrBadNorm is returned by Record for a negative or NaN norm.
	ErrBadNorm = errors.New("convergence: residual norm must be a non-negative number")
)

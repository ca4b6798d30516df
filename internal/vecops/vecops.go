// SPDX-License-Identifier: MIT

// Package vecops holds the whole-vector updates shared by the relaxation
// kernels. float64 slices are routed to the CPU-dispatched block kernels of
// algo-vecmath; every other element type takes the plain loop.
//
// Only separately rounded operations are used (no fused multiply-add), so the
// fast path and the loop agree bit for bit. Slice lengths must match; callers
// validate them before reaching this package.
package vecops

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/relax/sparse"
)

// AddInPlace computes dst[i] += src[i].
func AddInPlace[T sparse.Scalar](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// ScaleInPlace computes dst[i] *= s.
func ScaleInPlace[T sparse.Scalar](dst []T, s T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlockInPlace(d, any(s).(float64))
		return
	}
	for i := range dst {
		dst[i] *= s
	}
}

// Scale computes dst[i] = s * src[i].
func Scale[T sparse.Scalar](dst, src []T, s T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, any(src).([]float64), any(s).(float64))
		return
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// MulInPlace computes the elementwise product dst[i] *= src[i].
func MulInPlace[T sparse.Scalar](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// Fill sets every element of dst to v.
func Fill[T sparse.Scalar](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// IsZero reports whether every element of x compares equal to zero.
// NaN is never zero, so a vector holding NaN is not zero.
func IsZero[T sparse.Scalar](x []T) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}

	return true
}

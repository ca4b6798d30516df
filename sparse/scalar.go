// SPDX-License-Identifier: MIT

package sparse

import "math/cmplx"

// Scalar is the closed set of element types an operator, an iterate and a
// right-hand side may carry. All three must share the same Scalar.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// DType names the element type of a Matrix at runtime.
type DType uint8

const (
	// DTypeInvalid is the zero value; never produced by DTypeOf.
	DTypeInvalid DType = iota
	Float32
	Float64
	Complex64
	Complex128
)

// String returns the conventional short name of the element type.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// IsComplex reports whether d is one of the complex element types.
func (d DType) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// DTypeOf returns the DType tag of the type parameter T.
func DTypeOf[T Scalar]() DType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}

	return DTypeInvalid
}

// Conj returns the complex conjugate of v. Real values are returned unchanged.
//
// Hot loops should test DTypeOf[T]().IsComplex() once and call Conj only on
// the complex path, since the type switch boxes v.
func Conj[T Scalar](v T) T {
	switch z := any(v).(type) {
	case complex64:
		return any(complex(real(z), -imag(z))).(T)
	case complex128:
		return any(cmplx.Conj(z)).(T)
	}

	return v
}

// FromComplex converts c to T. For real T the conversion fails (ok == false)
// when c carries a non-zero imaginary part; the real part alone is never
// silently kept.
func FromComplex[T Scalar](c complex128) (v T, ok bool) {
	switch p := any(&v).(type) {
	case *float32:
		if imag(c) != 0 {
			return v, false
		}
		*p = float32(real(c))
	case *float64:
		if imag(c) != 0 {
			return v, false
		}
		*p = real(c)
	case *complex64:
		*p = complex64(c)
	case *complex128:
		*p = c
	}

	return v, true
}

// ToComplex widens v to complex128. Used by reporting helpers that need a
// single numeric type for every Scalar.
func ToComplex[T Scalar](v T) complex128 {
	switch z := any(v).(type) {
	case float32:
		return complex(float64(z), 0)
	case float64:
		return complex(z, 0)
	case complex64:
		return complex128(z)
	case complex128:
		return z
	}

	return 0
}

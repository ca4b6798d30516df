// SPDX-License-Identifier: MIT

package relaxation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/relax/sparse"
)

// System is a validated, kernel-ready (A, x, b) triple.
//
// X and B share memory with the caller's inputs; a kernel writing X writes
// the caller's iterate. B is the only field that may be a private copy, and
// only when b was handed in as a strided gonum view.
type System[T sparse.Scalar] struct {
	A sparse.Matrix[T]
	X []T
	B []T

	// Converted reports that A is not the caller's operator but a copy in
	// another storage format. It is the performance warning of an implicit
	// conversion, surfaced as data.
	Converted bool

	// From is the storage format of the caller's operator.
	From sparse.Format
}

// N returns the order of the system.
func (s *System[T]) N() int {
	n, _ := s.A.Dims()
	return n
}

// MakeSystem validates and normalizes (a, x, b) for element type T.
//
// Accepted operators: any sparse.Matrix[T]; for T = float64 also any gonum
// mat.Matrix, which is converted to the first acceptable format (CSR when
// formats is empty).
//
// Accepted vectors: []T of length n; for T = float64 also *mat.VecDense of
// length n and *mat.Dense of shape n×1. The returned X and B are flat views
// of length n.
//
// Format policy: with no formats the operator keeps its storage. Otherwise an
// operator already in one of formats is returned unchanged, and any other is
// converted to formats[0] with Converted set.
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrTypeMismatch: an argument carries an element type other than T.
//   - ErrShapeMismatch: A is not square, or x/b is not n or n×1.
//   - ErrNotContiguous: x is a strided gonum view.
//   - ErrInvalidConfig: formats names a format that cannot be produced.
//   - ErrInvalidArgument: nil or unsupported argument kinds, malformed storage.
func MakeSystem[T sparse.Scalar](a, x, b any, formats ...sparse.Format) (*System[T], error) {
	const tag = "MakeSystem"

	op, from, converted, err := asOperator[T](a)
	if err != nil {
		return nil, relaxErrorf(tag, err, nil)
	}
	n, _ := op.Dims()

	xs, err := asVector[T](x, n, true)
	if err != nil {
		return nil, relaxErrorf(tag+": x", err, nil)
	}
	bs, err := asVector[T](b, n, false)
	if err != nil {
		return nil, relaxErrorf(tag+": b", err, nil)
	}

	sys, err := newSystem(op, xs, bs, formats...)
	if err != nil {
		return nil, relaxErrorf(tag, err, nil)
	}
	if converted {
		sys.Converted, sys.From = true, from
	}

	return sys, nil
}

// newSystem is the typed path shared by every smoother: the operator and
// vectors already carry T, so only structure, shape and format remain.
func newSystem[T sparse.Scalar](a sparse.Matrix[T], x, b []T, formats ...sparse.Format) (*System[T], error) {
	if sparse.IsNil(a) {
		return nil, fmt.Errorf("operator is nil: %w", ErrInvalidArgument)
	}
	if err := sparse.ValidateStructure(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err := sparse.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}

	n, _ := a.Dims()
	if err := sparse.ValidateVecLen(x, n); err != nil {
		return nil, fmt.Errorf("x has length %d, want %d: %w", len(x), n, ErrShapeMismatch)
	}
	if err := sparse.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("b has length %d, want %d: %w", len(b), n, ErrShapeMismatch)
	}

	sys := &System[T]{A: a, X: x, B: b, From: a.Format()}
	if len(formats) == 0 || a.Format().In(formats...) {
		return sys, nil
	}

	to := formats[0]
	conv, err := sparse.Convert(a, to)
	if err != nil {
		return nil, fmt.Errorf("convert %s to %s: %w: %w", a.Format(), to, ErrInvalidConfig, err)
	}
	sys.A, sys.Converted = conv, true

	return sys, nil
}

// asOperator resolves the operator argument to a sparse.Matrix[T].
// converted reports that a gonum operator was turned into CSR storage.
func asOperator[T sparse.Scalar](a any) (op sparse.Matrix[T], from sparse.Format, converted bool, err error) {
	switch v := a.(type) {
	case nil:
		return nil, 0, false, fmt.Errorf("operator is nil: %w", ErrInvalidArgument)
	case sparse.Matrix[T]:
		return v, v.Format(), false, nil
	case interface{ DType() sparse.DType }:
		// A sparse matrix of another element type.
		return nil, 0, false, fmt.Errorf("operator is %s, want %s: %w", v.DType(), sparse.DTypeOf[T](), ErrTypeMismatch)
	case mat.Matrix:
		if sparse.DTypeOf[T]() != sparse.Float64 {
			return nil, 0, false, fmt.Errorf("gonum operator is float64, want %s: %w", sparse.DTypeOf[T](), ErrTypeMismatch)
		}
		csr, cerr := sparse.FromMat(v)
		if cerr != nil {
			return nil, 0, false, fmt.Errorf("%w: %w", ErrInvalidArgument, cerr)
		}
		return any(csr).(sparse.Matrix[T]), sparse.FormatDense, true, nil
	}

	return nil, 0, false, fmt.Errorf("unsupported operator %T: %w", a, ErrInvalidArgument)
}

// asVector resolves a vector argument to a flat []T of length n sharing the
// caller's memory. A strided view is rejected when contiguous is set and
// copied otherwise.
func asVector[T sparse.Scalar](v any, n int, contiguous bool) ([]T, error) {
	switch w := v.(type) {
	case []T:
		if len(w) != n {
			return nil, fmt.Errorf("length %d, want %d: %w", len(w), n, ErrShapeMismatch)
		}
		return w, nil
	case []float32, []float64, []complex64, []complex128:
		return nil, fmt.Errorf("%T, want []%s: %w", v, sparse.DTypeOf[T](), ErrTypeMismatch)
	case *mat.VecDense:
		if w == nil {
			return nil, fmt.Errorf("nil *mat.VecDense: %w", ErrInvalidArgument)
		}
		raw := w.RawVector()
		if raw.N != n {
			return nil, fmt.Errorf("length %d, want %d: %w", raw.N, n, ErrShapeMismatch)
		}
		return gonumStrided[T](raw.Data, n, raw.Inc, contiguous)
	case *mat.Dense:
		if w == nil {
			return nil, fmt.Errorf("nil *mat.Dense: %w", ErrInvalidArgument)
		}
		if w.IsEmpty() {
			if n == 0 {
				return make([]T, 0), nil
			}
			return nil, fmt.Errorf("empty matrix, want %d×1: %w", n, ErrShapeMismatch)
		}
		raw := w.RawMatrix()
		if raw.Rows != n || raw.Cols != 1 {
			return nil, fmt.Errorf("shape %d×%d, want %d or %d×1: %w", raw.Rows, raw.Cols, n, n, ErrShapeMismatch)
		}
		return gonumStrided[T](raw.Data, n, raw.Stride, contiguous)
	case nil:
		return nil, fmt.Errorf("vector is nil: %w", ErrInvalidArgument)
	}

	return nil, fmt.Errorf("unsupported vector %T: %w", v, ErrInvalidArgument)
}

// gonumStrided views n elements of data spaced inc apart as []T.
func gonumStrided[T sparse.Scalar](data []float64, n, inc int, contiguous bool) ([]T, error) {
	if sparse.DTypeOf[T]() != sparse.Float64 {
		return nil, fmt.Errorf("gonum vector is float64, want %s: %w", sparse.DTypeOf[T](), ErrTypeMismatch)
	}
	if inc == 1 || n <= 1 {
		return any(data[:n:n]).([]T), nil
	}
	if contiguous {
		return nil, fmt.Errorf("stride %d: %w", inc, ErrNotContiguous)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*inc]
	}

	return any(out).([]T), nil
}

// SPDX-License-Identifier: MIT

package relaxation

import (
	"fmt"

	"github.com/katalvlaran/relax/sparse"
)

// Smoother relaxes A·x = b in place with a fixed method and parameters.
type Smoother[T sparse.Scalar] func(a sparse.Matrix[T], x, b []T) error

// NewSmoother validates c and binds it to element type T. Every parameter
// that can be checked without a system (method, sweep, iterations, omega
// representability, coefficient list) is checked here, so the returned
// Smoother only fails on the system it is given.
func NewSmoother[T sparse.Scalar](c Config) (Smoother[T], error) {
	const tag = "NewSmoother"

	if err := c.Validate(); err != nil {
		return nil, relaxErrorf(tag, err, nil)
	}
	opts := c.Options()
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, relaxErrorf(tag, err, nil)
	}
	omega, err := omegaAs[T](o)
	if err != nil {
		return nil, relaxErrorf(tag, err, nil)
	}

	switch c.Method {
	case MethodGaussSeidel:
		return func(a sparse.Matrix[T], x, b []T) error {
			return GaussSeidel(a, x, b, opts...)
		}, nil
	case MethodSOR:
		return func(a sparse.Matrix[T], x, b []T) error {
			return SOR(a, x, b, omega, opts...)
		}, nil
	case MethodGaussSeidelIndexed:
		indices := append([]int(nil), c.Indices...)
		return func(a sparse.Matrix[T], x, b []T) error {
			return GaussSeidelIndexed(a, x, b, indices, opts...)
		}, nil
	case MethodJacobi:
		return func(a sparse.Matrix[T], x, b []T) error {
			return Jacobi(a, x, b, opts...)
		}, nil
	case MethodPolynomial:
		coeffs := make([]T, len(c.Coefficients))
		for i, v := range c.Coefficients {
			coeffs[i], _ = sparse.FromComplex[T](complex(v, 0))
		}
		return func(a sparse.Matrix[T], x, b []T) error {
			return Polynomial(a, x, b, coeffs, opts...)
		}, nil
	case MethodKaczmarzJacobi:
		return func(a sparse.Matrix[T], x, b []T) error {
			return KaczmarzJacobi(a, x, b, opts...)
		}, nil
	case MethodKaczmarzRichardson:
		return func(a sparse.Matrix[T], x, b []T) error {
			return KaczmarzRichardson(a, x, b, opts...)
		}, nil
	case MethodKaczmarzGaussSeidel:
		return func(a sparse.Matrix[T], x, b []T) error {
			return KaczmarzGaussSeidel(a, x, b, opts...)
		}, nil
	}

	return nil, relaxErrorf(tag, fmt.Errorf("method %q: %w", c.Method, ErrInvalidConfig), nil)
}

// NewSmootherPair builds the pre- and post-smoother of p.
func NewSmootherPair[T sparse.Scalar](p Pair) (pre, post Smoother[T], err error) {
	if pre, err = NewSmoother[T](p.Pre); err != nil {
		return nil, nil, fmt.Errorf("presmoother: %w", err)
	}
	if post, err = NewSmoother[T](p.Post); err != nil {
		return nil, nil, fmt.Errorf("postsmoother: %w", err)
	}

	return pre, post, nil
}

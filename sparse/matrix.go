// SPDX-License-Identifier: MIT

package sparse

// Matrix is the closed set of sparse storage kinds a relaxation call accepts.
// It is implemented only by *CSR[T], *BSR[T] and *COO[T]; callers resolve the
// concrete kind once with a type switch and never re-inspect it.
//
// Matrices are treated as read-only by every algorithm in this module.
type Matrix[T Scalar] interface {
	// Dims returns the scalar dimensions (rows, cols).
	Dims() (rows, cols int)
	// Format returns the storage layout tag.
	Format() Format
	// NNZ returns the number of stored scalar entries (explicit zeros included).
	NNZ() int
	// DType returns the runtime element type tag.
	DType() DType
	// MatVec computes dst = A·x. It also binds the interface to T, so a
	// matrix of one element type never satisfies Matrix of another.
	MatVec(dst, x []T) error

	sealed()
}

var (
	_ Matrix[float64]    = (*CSR[float64])(nil)
	_ Matrix[complex128] = (*BSR[complex128])(nil)
	_ Matrix[float32]    = (*COO[float32])(nil)
)

// IsNil reports whether m is a nil interface or a typed nil pointer.
func IsNil[T Scalar](m Matrix[T]) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *CSR[T]:
		return v == nil
	case *BSR[T]:
		return v == nil
	case *COO[T]:
		return v == nil
	}

	return false
}

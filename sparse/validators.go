// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Keep shape checks in one place so the relaxation entry points stay small.
//   - Return tagged sentinels; callers match with errors.Is.

package sparse

// ValidateNotNil ensures m is neither a nil interface nor a typed nil pointer.
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if IsNil(m) {
		return sparseErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and has Rows == Cols.
func ValidateSquare[T Scalar](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if r, c := m.Dims(); r != c {
		return sparseErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures len(v) == n.
func ValidateVecLen[T Scalar](v []T, n int) error {
	if len(v) != n {
		return sparseErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateStructure runs the storage-level Validate of whichever kind m is.
func ValidateStructure[T Scalar](m Matrix[T]) error {
	switch v := m.(type) {
	case *CSR[T]:
		return v.Validate()
	case *BSR[T]:
		return v.Validate()
	case *COO[T]:
		return v.Validate()
	}

	return sparseErrorf("ValidateStructure", ErrNilMatrix)
}

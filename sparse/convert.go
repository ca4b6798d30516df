// SPDX-License-Identifier: MIT

package sparse

// AsCSR returns m in CSR form. A *CSR[T] is returned as is; other formats
// are converted into fresh storage.
func AsCSR[T Scalar](m Matrix[T]) (*CSR[T], error) {
	if IsNil(m) {
		return nil, sparseErrorf("AsCSR", ErrNilMatrix)
	}
	switch v := m.(type) {
	case *CSR[T]:
		return v, nil
	case *BSR[T]:
		return v.ToCSR(), nil
	case *COO[T]:
		return v.ToCSR(), nil
	}

	return nil, sparseErrorf("AsCSR", ErrUnknownFormat)
}

// Convert returns m in the target format. When m already has that format it
// is returned unchanged. Conversion to BSR uses 1×1 blocks; callers needing a
// specific block shape use (*CSR).ToBSR directly.
func Convert[T Scalar](m Matrix[T], to Format) (Matrix[T], error) {
	if IsNil(m) {
		return nil, sparseErrorf("Convert", ErrNilMatrix)
	}
	if m.Format() == to {
		return m, nil
	}

	csr, err := AsCSR(m)
	if err != nil {
		return nil, err
	}
	switch to {
	case FormatCSR:
		return csr, nil
	case FormatBSR:
		bsr, err := csr.ToBSR(1, 1)
		if err != nil {
			return nil, err
		}
		return bsr, nil
	case FormatCOO:
		return csr.ToCOO(), nil
	}

	return nil, sparseErrorf("Convert: "+to.String(), ErrUnknownFormat)
}

// ToCOO lists every stored entry of m as a triplet in row-major storage order.
func (m *CSR[T]) ToCOO() *COO[T] {
	row := make([]int, len(m.Data))
	for i := 0; i < m.Rows; i++ {
		for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
			row[jj] = i
		}
	}

	return &COO[T]{
		Rows: m.Rows,
		Cols: m.Cols,
		Row:  row,
		Col:  append([]int(nil), m.Indices...),
		Data: append([]T(nil), m.Data...),
	}
}

// MatVec computes dst = A·x for any storage kind.
func MatVec[T Scalar](m Matrix[T], dst, x []T) error {
	switch v := m.(type) {
	case *CSR[T]:
		return v.MatVec(dst, x)
	case *BSR[T]:
		return v.MatVec(dst, x)
	case *COO[T]:
		return v.MatVec(dst, x)
	}

	return sparseErrorf("MatVec", ErrNilMatrix)
}

// Residual computes dst = b − A·x for any storage kind. dst must alias
// neither x nor b.
func Residual[T Scalar](m Matrix[T], dst, x, b []T) error {
	if csr, ok := m.(*CSR[T]); ok {
		return csr.Residual(dst, x, b)
	}
	if len(b) != len(dst) {
		return sparseErrorf("Residual", ErrDimensionMismatch)
	}
	if err := MatVec(m, dst, x); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = b[i] - dst[i]
	}

	return nil
}

// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/mat"

// FromMat converts any gonum matrix into CSR storage, keeping only non-zero
// entries. *mat.Dense inputs are read through their raw backing array;
// every other implementation goes through At.
//
// Errors: ErrNilMatrix if a is nil.
func FromMat(a mat.Matrix) (*CSR[float64], error) {
	if a == nil {
		return nil, sparseErrorf("FromMat", ErrNilMatrix)
	}

	var (
		r, c    = a.Dims()
		i, j    int
		v       float64
		indptr  = make([]int, r+1)
		indices = make([]int, 0, r)
		data    = make([]float64, 0, r)
	)

	// Fast path: walk the strided raw storage directly.
	if d, ok := a.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i = 0; i < r; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+c]
			for j, v = range row {
				if v != 0 {
					indices = append(indices, j)
					data = append(data, v)
				}
			}
			indptr[i+1] = len(indices)
		}

		return &CSR[float64]{Rows: r, Cols: c, Indptr: indptr, Indices: indices, Data: data}, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v = a.At(i, j); v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(indices)
	}

	return &CSR[float64]{Rows: r, Cols: c, Indptr: indptr, Indices: indices, Data: data}, nil
}

// ToMat expands m into a gonum dense matrix. An empty m yields an empty *mat.Dense.
func ToMat(m *CSR[float64]) *mat.Dense {
	if m.Rows == 0 || m.Cols == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(m.Rows, m.Cols, m.ToDense())
}

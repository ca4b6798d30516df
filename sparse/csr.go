// SPDX-License-Identifier: MIT

package sparse

// CSR is a compressed sparse row matrix.
//
// Row i owns the half-open slot range Indptr[i]..Indptr[i+1] of Indices and
// Data. Column indices within a row need not be sorted and may repeat; At
// and MatVec sum repeated entries, while the relaxation kernels scan a row
// in stored order.
type CSR[T Scalar] struct {
	Rows, Cols int
	Indptr     []int // len Rows+1, Indptr[0] == 0, non-decreasing
	Indices    []int // len nnz, values in [0, Cols)
	Data       []T   // len nnz
}

// NewCSR wraps the given arrays (no copy) after validating their structure.
//
// Errors: ErrBadShape for negative dimensions, ErrBadStructure for
// inconsistent arrays, ErrOutOfRange for a column index outside [0, cols).
func NewCSR[T Scalar](rows, cols int, indptr, indices []int, data []T) (*CSR[T], error) {
	m := &CSR[T]{Rows: rows, Cols: cols, Indptr: indptr, Indices: indices, Data: data}
	if err := m.Validate(); err != nil {
		return nil, sparseErrorf("NewCSR", err)
	}

	return m, nil
}

// FromDense builds a CSR matrix from a row-major dense slice, storing every
// non-zero value in ascending column order.
func FromDense[T Scalar](rows, cols int, values []T) (*CSR[T], error) {
	if rows < 0 || cols < 0 || len(values) != rows*cols {
		return nil, sparseErrorf("FromDense", ErrBadShape)
	}

	var (
		i, j    int
		v       T
		indptr  = make([]int, rows+1)
		indices = make([]int, 0, rows)
		data    = make([]T, 0, rows)
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = values[i*cols+j]
			if v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(indices)
	}

	return &CSR[T]{Rows: rows, Cols: cols, Indptr: indptr, Indices: indices, Data: data}, nil
}

// Identity returns the n×n identity in CSR form.
func Identity[T Scalar](n int) (*CSR[T], error) {
	if n < 0 {
		return nil, sparseErrorf("Identity", ErrBadShape)
	}
	m := &CSR[T]{Rows: n, Cols: n, Indptr: make([]int, n+1), Indices: make([]int, n), Data: make([]T, n)}
	for i := 0; i < n; i++ {
		m.Indptr[i+1] = i + 1
		m.Indices[i] = i
		m.Data[i] = 1
	}

	return m, nil
}

func (m *CSR[T]) Dims() (int, int) { return m.Rows, m.Cols }
func (m *CSR[T]) Format() Format   { return FormatCSR }
func (m *CSR[T]) NNZ() int         { return len(m.Data) }
func (m *CSR[T]) DType() DType     { return DTypeOf[T]() }
func (m *CSR[T]) sealed()          {}

// Validate checks the structural invariants of m.
func (m *CSR[T]) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < 0 || m.Cols < 0 {
		return ErrBadShape
	}

	return validateCompressed(m.Rows, m.Cols, m.Indptr, m.Indices, len(m.Data), 1)
}

// At returns the sum of all stored entries at (i, j), or zero when none is stored.
func (m *CSR[T]) At(i, j int) (T, error) {
	var sum T
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return sum, sparseErrorf("At", ErrOutOfRange)
	}
	for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
		if m.Indices[jj] == j {
			sum += m.Data[jj]
		}
	}

	return sum, nil
}

// ToDense expands m into a row-major slice of length Rows*Cols.
func (m *CSR[T]) ToDense() []T {
	out := make([]T, m.Rows*m.Cols)
	for i := 0; i < m.Rows; i++ {
		for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
			out[i*m.Cols+m.Indices[jj]] += m.Data[jj]
		}
	}

	return out
}

// MatVec computes dst = A·x. dst and x must not alias.
func (m *CSR[T]) MatVec(dst, x []T) error {
	if len(x) != m.Cols || len(dst) != m.Rows {
		return sparseErrorf("CSR.MatVec", ErrDimensionMismatch)
	}

	var (
		i, jj int
		sum   T
	)
	for i = 0; i < m.Rows; i++ {
		sum = 0
		for jj = m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
			sum += m.Data[jj] * x[m.Indices[jj]]
		}
		dst[i] = sum
	}

	return nil
}

// Residual computes dst = b − A·x. dst may alias b but not x.
func (m *CSR[T]) Residual(dst, x, b []T) error {
	if len(x) != m.Cols || len(dst) != m.Rows || len(b) != m.Rows {
		return sparseErrorf("CSR.Residual", ErrDimensionMismatch)
	}

	var (
		i, jj int
		sum   T
	)
	for i = 0; i < m.Rows; i++ {
		sum = 0
		for jj = m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
			sum += m.Data[jj] * x[m.Indices[jj]]
		}
		dst[i] = b[i] - sum
	}

	return nil
}

// Diagonal returns the main diagonal (repeated entries summed) of length min(Rows, Cols).
func (m *CSR[T]) Diagonal() []T {
	n := min(m.Rows, m.Cols)
	diag := make([]T, n)
	for i := 0; i < n; i++ {
		for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
			if m.Indices[jj] == i {
				diag[i] += m.Data[jj]
			}
		}
	}

	return diag
}

// Clone returns a deep copy of m.
func (m *CSR[T]) Clone() *CSR[T] {
	return &CSR[T]{
		Rows:    m.Rows,
		Cols:    m.Cols,
		Indptr:  append([]int(nil), m.Indptr...),
		Indices: append([]int(nil), m.Indices...),
		Data:    append([]T(nil), m.Data...),
	}
}

// validateCompressed checks a (block) compressed row structure with nrows
// compressed rows, ncols columns and nvals stored values of blockLen scalars each.
func validateCompressed(nrows, ncols int, indptr, indices []int, nvals, blockLen int) error {
	if len(indptr) != nrows+1 {
		return sparseErrorf("indptr length", ErrBadStructure)
	}
	if indptr[0] != 0 {
		return sparseErrorf("indptr[0]", ErrBadStructure)
	}
	for i := 0; i < nrows; i++ {
		if indptr[i+1] < indptr[i] {
			return sparseErrorf("indptr order", ErrBadStructure)
		}
	}
	if indptr[nrows] != len(indices) || len(indices)*blockLen != nvals {
		return sparseErrorf("nnz", ErrBadStructure)
	}
	for _, j := range indices {
		if j < 0 || j >= ncols {
			return sparseErrorf("indices", ErrOutOfRange)
		}
	}

	return nil
}

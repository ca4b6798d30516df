// SPDX-License-Identifier: MIT

package sparse

import "sort"

// COO is a coordinate (triplet) matrix. It is accepted as input and
// converted before any relaxation kernel touches it.
type COO[T Scalar] struct {
	Rows, Cols int
	Row, Col   []int
	Data       []T
}

// NewCOO wraps the triplet slices (no copy) after validating them.
func NewCOO[T Scalar](rows, cols int, row, col []int, data []T) (*COO[T], error) {
	m := &COO[T]{Rows: rows, Cols: cols, Row: row, Col: col, Data: data}
	if err := m.Validate(); err != nil {
		return nil, sparseErrorf("NewCOO", err)
	}

	return m, nil
}

func (m *COO[T]) Dims() (int, int) { return m.Rows, m.Cols }
func (m *COO[T]) Format() Format   { return FormatCOO }
func (m *COO[T]) NNZ() int         { return len(m.Data) }
func (m *COO[T]) DType() DType     { return DTypeOf[T]() }
func (m *COO[T]) sealed()          {}

// Validate checks that the triplet slices agree and every index is in range.
func (m *COO[T]) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < 0 || m.Cols < 0 {
		return ErrBadShape
	}
	if len(m.Row) != len(m.Data) || len(m.Col) != len(m.Data) {
		return ErrBadStructure
	}
	for k := range m.Data {
		if m.Row[k] < 0 || m.Row[k] >= m.Rows || m.Col[k] < 0 || m.Col[k] >= m.Cols {
			return ErrOutOfRange
		}
	}

	return nil
}

// ToCSR converts m to CSR with columns sorted within each row and
// duplicate coordinates summed.
func (m *COO[T]) ToCSR() *CSR[T] {
	order := make([]int, len(m.Data))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if m.Row[ka] != m.Row[kb] {
			return m.Row[ka] < m.Row[kb]
		}
		return m.Col[ka] < m.Col[kb]
	})

	var (
		indptr  = make([]int, m.Rows+1)
		indices = make([]int, 0, len(order))
		data    = make([]T, 0, len(order))
		last    = -1 // position in indices of the previous (row, col)
		prevRow = -1
		prevCol = -1
	)
	for _, k := range order {
		i, j := m.Row[k], m.Col[k]
		if i == prevRow && j == prevCol {
			data[last] += m.Data[k]
			continue
		}
		indices = append(indices, j)
		data = append(data, m.Data[k])
		last = len(indices) - 1
		prevRow, prevCol = i, j
		indptr[i+1]++
	}
	for i := 0; i < m.Rows; i++ {
		indptr[i+1] += indptr[i]
	}

	return &CSR[T]{Rows: m.Rows, Cols: m.Cols, Indptr: indptr, Indices: indices, Data: data}
}

// MatVec computes dst = A·x. dst and x must not alias.
func (m *COO[T]) MatVec(dst, x []T) error {
	if len(x) != m.Cols || len(dst) != m.Rows {
		return sparseErrorf("COO.MatVec", ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] = 0
	}
	for k, v := range m.Data {
		dst[m.Row[k]] += v * x[m.Col[k]]
	}

	return nil
}

// SPDX-License-Identifier: MIT

package sparse

// BSR is a block compressed sparse row matrix with dense R×C blocks.
//
// The compressed structure (Indptr, Indices) is expressed in block units:
// there are Rows/R block rows and Cols/C block columns. Block k occupies
// Data[k*R*C : (k+1)*R*C] in row-major order.
type BSR[T Scalar] struct {
	Rows, Cols int // scalar dimensions
	R, C       int // block shape
	Indptr     []int
	Indices    []int
	Data       []T
}

// NewBSR wraps the given arrays (no copy) after validating their structure.
//
// Errors: ErrBlockSize when r or c is non-positive or does not divide the
// matrix dimensions; otherwise the same as NewCSR.
func NewBSR[T Scalar](rows, cols, r, c int, indptr, indices []int, data []T) (*BSR[T], error) {
	m := &BSR[T]{Rows: rows, Cols: cols, R: r, C: c, Indptr: indptr, Indices: indices, Data: data}
	if err := m.Validate(); err != nil {
		return nil, sparseErrorf("NewBSR", err)
	}

	return m, nil
}

func (m *BSR[T]) Dims() (int, int) { return m.Rows, m.Cols }
func (m *BSR[T]) Format() Format   { return FormatBSR }
func (m *BSR[T]) NNZ() int         { return len(m.Data) }
func (m *BSR[T]) DType() DType     { return DTypeOf[T]() }
func (m *BSR[T]) sealed()          {}

// BlockSize returns the block shape (R, C).
func (m *BSR[T]) BlockSize() (int, int) { return m.R, m.C }

// BlockRows returns the number of block rows, Rows/R.
func (m *BSR[T]) BlockRows() int { return m.Rows / m.R }

// NNZB returns the number of stored blocks.
func (m *BSR[T]) NNZB() int { return len(m.Indices) }

// Validate checks the structural invariants of m.
func (m *BSR[T]) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < 0 || m.Cols < 0 {
		return ErrBadShape
	}
	if m.R <= 0 || m.C <= 0 || m.Rows%m.R != 0 || m.Cols%m.C != 0 {
		return ErrBlockSize
	}

	return validateCompressed(m.Rows/m.R, m.Cols/m.C, m.Indptr, m.Indices, len(m.Data), m.R*m.C)
}

// MatVec computes dst = A·x. dst and x must not alias.
func (m *BSR[T]) MatVec(dst, x []T) error {
	if len(x) != m.Cols || len(dst) != m.Rows {
		return sparseErrorf("BSR.MatVec", ErrDimensionMismatch)
	}

	var (
		bi, jj, r, c, row, col int
		sum                    T
		block                  []T
		rr, cc                 = m.R, m.C
	)
	for bi = 0; bi < m.Rows/rr; bi++ {
		row = bi * rr
		for r = 0; r < rr; r++ {
			dst[row+r] = 0
		}
		for jj = m.Indptr[bi]; jj < m.Indptr[bi+1]; jj++ {
			col = m.Indices[jj] * cc
			block = m.Data[jj*rr*cc : (jj+1)*rr*cc]
			for r = 0; r < rr; r++ {
				sum = 0
				for c = 0; c < cc; c++ {
					sum += block[r*cc+c] * x[col+c]
				}
				dst[row+r] += sum
			}
		}
	}

	return nil
}

// ToCSR expands every stored block into scalar entries. Explicit zeros inside
// blocks are kept so that NNZ is preserved.
func (m *BSR[T]) ToCSR() *CSR[T] {
	var (
		rr, cc  = m.R, m.C
		nbr     = m.Rows / rr
		indptr  = make([]int, m.Rows+1)
		indices = make([]int, 0, len(m.Data))
		data    = make([]T, 0, len(m.Data))
	)
	for bi := 0; bi < nbr; bi++ {
		for r := 0; r < rr; r++ {
			for jj := m.Indptr[bi]; jj < m.Indptr[bi+1]; jj++ {
				base := jj*rr*cc + r*cc
				for c := 0; c < cc; c++ {
					indices = append(indices, m.Indices[jj]*cc+c)
					data = append(data, m.Data[base+c])
				}
			}
			indptr[bi*rr+r+1] = len(indices)
		}
	}

	return &CSR[T]{Rows: m.Rows, Cols: m.Cols, Indptr: indptr, Indices: indices, Data: data}
}

// ToBSR groups m into dense r×c blocks. A block is stored when any scalar
// entry falling into it is stored; block columns within a block row are
// emitted in ascending order and repeated scalar entries are summed.
//
// Errors: ErrBlockSize when r or c is non-positive or does not divide the dimensions.
func (m *CSR[T]) ToBSR(r, c int) (*BSR[T], error) {
	if r <= 0 || c <= 0 || m.Rows%r != 0 || m.Cols%c != 0 {
		return nil, sparseErrorf("CSR.ToBSR", ErrBlockSize)
	}

	var (
		nbr     = m.Rows / r
		nbc     = m.Cols / c
		indptr  = make([]int, nbr+1)
		indices []int
		data    []T
		slot    = make([]int, nbc) // block column -> block index in current row, or -1
	)
	for k := range slot {
		slot[k] = -1
	}
	for bi := 0; bi < nbr; bi++ {
		first := len(indices)
		// Collect the block columns touched by this block row in ascending order.
		marks := make([]bool, nbc)
		for i := bi * r; i < (bi+1)*r; i++ {
			for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
				marks[m.Indices[jj]/c] = true
			}
		}
		for bj := 0; bj < nbc; bj++ {
			if marks[bj] {
				slot[bj] = len(indices)
				indices = append(indices, bj)
				data = append(data, make([]T, r*c)...)
			}
		}
		for i := bi * r; i < (bi+1)*r; i++ {
			for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
				j := m.Indices[jj]
				k := slot[j/c]
				data[k*r*c+(i-bi*r)*c+j%c] += m.Data[jj]
			}
		}
		for _, bj := range indices[first:] {
			slot[bj] = -1
		}
		indptr[bi+1] = len(indices)
	}

	return &BSR[T]{Rows: m.Rows, Cols: m.Cols, R: r, C: c, Indptr: indptr, Indices: indices, Data: data}, nil
}

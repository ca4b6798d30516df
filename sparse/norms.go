// SPDX-License-Identifier: MIT

package sparse

// RowNormsSquared returns Σ_j |A_ij|² for every row of m. For complex data the
// squared modulus is formed as A_ij·conj(A_ij), so the result has a zero
// imaginary part.
func RowNormsSquared[T Scalar](m *CSR[T]) []T {
	var (
		cplx = DTypeOf[T]().IsComplex()
		out  = make([]T, m.Rows)
		i    int
		jj   int
		v    T
		sum  T
	)
	for i = 0; i < m.Rows; i++ {
		sum = 0
		for jj = m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
			v = m.Data[jj]
			if cplx {
				sum += v * Conj(v)
			} else {
				sum += v * v
			}
		}
		out[i] = sum
	}

	return out
}

// InvRowNormsSquared returns the diagonal of (A·Aᴴ)⁻¹, i.e. 1 / Σ_j |A_ij|²
// per row. A row with no non-zero entries yields a non-finite value.
func InvRowNormsSquared[T Scalar](m *CSR[T]) []T {
	out := RowNormsSquared(m)
	for i, s := range out {
		out[i] = 1 / s
	}

	return out
}

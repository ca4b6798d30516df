// Package sparse provides the storage kinds a relaxation sweep runs on:
// compressed sparse row (CSR), block compressed sparse row (BSR) and
// coordinate (COO) matrices over float32, float64, complex64 and complex128.
//
// 🚀 What lives here?
//
//	• CSR[T], BSR[T], COO[T] behind the sealed Matrix[T] interface
//	• structural validation (NewCSR, NewBSR, NewCOO, Validate)
//	• conversions: COO → CSR, CSR ⇄ BSR, Convert to any Format
//	• MatVec / Residual for every kind
//	• row-norm helpers used by the Kaczmarz family (InvRowNormsSquared)
//	• gonum interop for float64 (FromMat, ToMat)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/relax/sparse"
//
//	a, err := sparse.NewCSR(3, 3,
//		[]int{0, 2, 5, 7},
//		[]int{0, 1, 0, 1, 2, 1, 2},
//		[]float64{2, -1, -1, 2, -1, -1, 2})
//	if err != nil { ... }
//
//	y := make([]float64, 3)
//	_ = a.MatVec(y, []float64{1, 1, 1}) // y = [1 0 1]
//
// Matrices are never mutated by the relaxation packages; conversions always
// allocate fresh storage.
package sparse

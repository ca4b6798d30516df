// Package relaxation implements the stationary smoothers of an algebraic
// multigrid hierarchy: Gauss-Seidel (point, block and indexed), SOR, weighted
// Jacobi, polynomial (Horner) smoothing and the Kaczmarz family.
//
// 🚀 What lives here?
//
//	• GaussSeidel, SOR, GaussSeidelIndexed      - sequential sweeps (CSR / BSR)
//	• Jacobi                                    - simultaneous damped update
//	• Polynomial                                - x += p(A)·(b − A·x)
//	• KaczmarzJacobi, KaczmarzRichardson,
//	  KaczmarzGaussSeidel                       - normal-equation relaxation
//	• MakeSystem                                - normalizes (A, x, b), gonum included
//	• Config, Pair, NewSmoother                 - declarative YAML smoothers
//
// ⚙️ Usage:
//
//	a, _ := gallery.Poisson1D[float64](10)
//	x := make([]float64, 10)
//	b := make([]float64, 10)
//	for i := range b {
//		b[i] = 1
//	}
//	err := relaxation.GaussSeidel(a, x, b,
//		relaxation.WithSweep(sweep.Symmetric),
//		relaxation.WithIterations(10))
//
// 📐 Contract:
//
//	• x is updated in place and is the only value written.
//	• Every error is raised before the first write to x.
//	• Iterations 0 validates the call and leaves x untouched.
//	• A zero diagonal or empty row is not trapped; NaN/Inf propagates.
//	• Operators in an unsupported storage kind are converted once per call;
//	  MakeSystem reports such conversions through System.Converted.
//
// Errors wrap ErrInvalidArgument and one of ErrShapeMismatch,
// ErrTypeMismatch, ErrNotContiguous or ErrInvalidConfig.
package relaxation

// Package relax is the relaxation engine of an algebraic multigrid solver:
// the smoothers applied to A·x = b on every level of a hierarchy, together
// with the storage, ordering and bookkeeping they rely on.
//
// 🚀 What is relax?
//
//	A pure-Go, generic library (float32, float64, complex64, complex128) that
//	brings together:
//		• Sparse storage: CSR, BSR and COO with conversions and gonum adapters
//		• Sweep plans: forward, backward, symmetric
//		• Sequential smoothers: Gauss-Seidel (point, block, indexed) and SOR
//		• Simultaneous smoothers: weighted Jacobi, polynomial (Horner)
//		• Normal-equation smoothers: Kaczmarz Jacobi, Richardson, Gauss-Seidel
//		• Declarative YAML smoother configurations
//		• Row orderings, colourings and convergence bookkeeping
//
// ✨ Why choose relax?
//
//   - Every error is reported before the iterate is touched
//   - In-place updates on caller storage, no hidden allocation per sweep
//   - One entry point per method, tuned through functional options
//
// Under the hood, everything is organized into subpackages:
//
//	sparse/      - Matrix interface, CSR / BSR / COO storage, conversions
//	sweep/       - Direction and the (start, stop, step) sweep plan
//	kernel/      - the raw per-direction relaxation loops
//	relaxation/  - validated smoothers, MakeSystem, Config / Pair / NewSmoother
//	ordering/    - natural, reverse, Cuthill-McKee and colour orderings
//	gallery/     - Poisson model operators
//	convergence/ - residual history and hierarchy complexity
//
// Quick example:
//
//	a, _ := gallery.Poisson2D[float64](32, 32)
//	x := make([]float64, 32*32)
//	err := relaxation.GaussSeidel(a, x, gallery.Ones[float64](32*32),
//		relaxation.WithSweep(sweep.Symmetric))
//
// A complete walkthrough lives in examples/poisson.
//
//	go get github.com/katalvlaran/relax
package relax

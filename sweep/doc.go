// Package sweep turns a symbolic traversal direction and an iteration count
// into the concrete, ordered passes a sequential relaxation kernel performs.
//
// Every Gauss-Seidel style kernel in this module (point, block, indexed and
// Kaczmarz) consumes the same Plan, so "symmetric with k iterations" always
// means k repetitions of one full forward pass followed by one full backward
// pass: 2k passes in total, never k combined ones.
//
//	passes, err := sweep.Plan(sweep.Symmetric, 2, n)
//	// passes = [{0 n 1} {n-1 -1 -1} {0 n 1} {n-1 -1 -1}]
//
// Plans are expressed in positions, not rows. Block kernels pass the number
// of block rows; the indexed kernel passes the length of its index sequence,
// so a backward pass walks that sequence in reverse.
package sweep

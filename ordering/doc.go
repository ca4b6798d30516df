// Package ordering produces row sequences for indexed Gauss-Seidel sweeps.
//
// Orderings are computed from the sparsity graph of a square CSR matrix
// (i ~ j when A_ij or A_ji is stored), never from its values:
//
//	• Natural, Reverse               - the plain sweeps, as index lists
//	• CuthillMcKee,
//	  ReverseCuthillMcKee            - breadth-first, bandwidth reducing
//	• GreedyColoring + ColorOrder    - multicolour sweeps
//	• Select                         - partial sweeps over a subset of rows
//
// Every returned sequence can be passed unchanged to
// relaxation.GaussSeidelIndexed; only Natural, Reverse and the two
// Cuthill-McKee variants are guaranteed to be permutations.
package ordering

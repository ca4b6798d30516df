// Package convergence is the bookkeeping around a smoother: the residual
// history a caller accumulates while iterating and the complexity figures of
// the multigrid hierarchy the smoother runs in.
//
// Nothing here prints or plots. History turns recorded residual norms into
// reduction factors, their arithmetic and geometric means, and the work
// needed per digit of accuracy; Hierarchy turns per-level sizes into
// operator, grid and cycle complexities.
package convergence

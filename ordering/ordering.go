// SPDX-License-Identifier: MIT

package ordering

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/relax/sparse"
)

var (
	// ErrNonSquare is returned when the operator has rows ≠ cols; an ordering
	// permutes unknowns, so the sparsity graph must be square.
	ErrNonSquare = errors.New("ordering: operator must be square")

	// ErrBadOperator wraps a structural failure of the input matrix.
	ErrBadOperator = errors.New("ordering: malformed operator")
)

// Natural returns the identity sequence 0..n-1.
func Natural(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}

	return out
}

// Reverse returns n-1..0.
func Reverse(n int) []int {
	out := Natural(n)
	slices.Reverse(out)

	return out
}

// Select returns, in ascending order, every row i in [0, n) for which keep
// reports true. It builds partial sweeps such as F-point or C-point smoothing.
func Select(n int, keep func(i int) bool) []int {
	var out []int
	for i := 0; i < n; i++ {
		if keep(i) {
			out = append(out, i)
		}
	}

	return out
}

// graph is the undirected sparsity graph of a square CSR matrix: i ~ j when
// A_ij or A_ji is stored and i ≠ j. Neighbour lists are ascending and free
// of duplicates.
type graph struct {
	adj [][]int
}

func newGraph[T sparse.Scalar](tag string, a *sparse.CSR[T]) (*graph, error) {
	if err := sparse.ValidateNotNil[T](a); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", tag, ErrBadOperator, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", tag, ErrBadOperator, err)
	}
	if a.Rows != a.Cols {
		return nil, fmt.Errorf("%s: %d×%d: %w", tag, a.Rows, a.Cols, ErrNonSquare)
	}

	adj := make([][]int, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for jj := a.Indptr[i]; jj < a.Indptr[i+1]; jj++ {
			if j := a.Indices[jj]; j != i {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}

	return &graph{adj: adj}, nil
}

func (g *graph) degree(i int) int { return len(g.adj[i]) }

// walker holds the state of one Cuthill-McKee traversal.
type walker struct {
	g       *graph
	visited []bool
	queue   []int
	order   []int
}

// CuthillMcKee returns the Cuthill-McKee ordering of a's sparsity graph.
//
// Each connected component is traversed breadth first from its vertex of
// lowest degree (lowest index on ties); the unvisited neighbours of each
// dequeued vertex are enqueued by ascending degree, then index. The result is
// a permutation of 0..n-1 that tends to shrink the bandwidth, which makes a
// Gauss-Seidel sweep along it propagate information level by level.
func CuthillMcKee[T sparse.Scalar](a *sparse.CSR[T]) ([]int, error) {
	g, err := newGraph("CuthillMcKee", a)
	if err != nil {
		return nil, err
	}

	n := len(g.adj)
	w := &walker{
		g:       g,
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
		order:   make([]int, 0, n),
	}

	// Component roots in ascending (degree, index) order.
	roots := Natural(n)
	slices.SortStableFunc(roots, func(u, v int) int { return g.degree(u) - g.degree(v) })
	for _, r := range roots {
		if !w.visited[r] {
			w.enqueue(r)
			w.loop()
		}
	}

	return w.order, nil
}

// ReverseCuthillMcKee returns CuthillMcKee reversed, the usual
// bandwidth-reducing permutation.
func ReverseCuthillMcKee[T sparse.Scalar](a *sparse.CSR[T]) ([]int, error) {
	order, err := CuthillMcKee(a)
	if err != nil {
		return nil, fmt.Errorf("ReverseCuthillMcKee: %w", err)
	}
	slices.Reverse(order)

	return order, nil
}

func (w *walker) enqueue(i int) {
	w.visited[i] = true
	w.queue = append(w.queue, i)
}

func (w *walker) loop() {
	var next []int
	for len(w.queue) > 0 {
		i := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, i)

		next = next[:0]
		for _, j := range w.g.adj[i] {
			if !w.visited[j] {
				next = append(next, j)
			}
		}
		slices.SortStableFunc(next, func(u, v int) int { return w.g.degree(u) - w.g.degree(v) })
		for _, j := range next {
			w.enqueue(j)
		}
	}
}

// Bandwidth returns max |i − j| over the stored entries of a after the rows
// and columns are renumbered by perm (perm[k] is the old index placed at
// position k). A nil perm measures a as stored.
func Bandwidth[T sparse.Scalar](a *sparse.CSR[T], perm []int) (int, error) {
	if err := sparse.ValidateNotNil[T](a); err != nil {
		return 0, fmt.Errorf("Bandwidth: %w: %w", ErrBadOperator, err)
	}
	pos := Natural(a.Rows)
	if perm != nil {
		if !IsPermutation(perm, a.Rows) {
			return 0, fmt.Errorf("Bandwidth: perm is not a permutation of 0..%d: %w", a.Rows-1, ErrBadOperator)
		}
		for k, old := range perm {
			pos[old] = k
		}
	}

	bw := 0
	for i := 0; i < a.Rows; i++ {
		for jj := a.Indptr[i]; jj < a.Indptr[i+1]; jj++ {
			j := a.Indices[jj]
			if j >= len(pos) {
				continue
			}
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			bw = max(bw, d)
		}
	}

	return bw, nil
}

// IsPermutation reports whether p holds each of 0..n-1 exactly once.
func IsPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

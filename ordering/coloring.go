// SPDX-License-Identifier: MIT

package ordering

import (
	"fmt"

	"github.com/katalvlaran/relax/sparse"
)

// GreedyColoring assigns each row the smallest colour not used by any of
// its already-coloured neighbours in a's symmetrized sparsity graph, visiting
// rows in natural order. It returns the colour of every row and the number
// of colours used.
//
// Rows sharing a colour are never coupled, so within one colour class the
// Gauss-Seidel updates are independent of each other.
func GreedyColoring[T sparse.Scalar](a *sparse.CSR[T]) (colors []int, k int, err error) {
	g, err := newGraph("GreedyColoring", a)
	if err != nil {
		return nil, 0, err
	}

	n := len(g.adj)
	colors = make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	// mark[c] == i+1 means colour c is taken by a neighbour of row i.
	mark := make([]int, n+1)
	for i := 0; i < n; i++ {
		for _, j := range g.adj[i] {
			if c := colors[j]; c >= 0 {
				mark[c] = i + 1
			}
		}
		c := 0
		for mark[c] == i+1 {
			c++
		}
		colors[i] = c
		k = max(k, c+1)
	}

	return colors, k, nil
}

// ColorOrder returns the multicolour sweep sequence: every row of colour 0
// in ascending order, then colour 1, and so on. Negative colours are rejected.
func ColorOrder(colors []int) ([]int, error) {
	k := 0
	for i, c := range colors {
		if c < 0 {
			return nil, fmt.Errorf("ColorOrder: colors[%d] = %d: %w", i, c, ErrBadOperator)
		}
		k = max(k, c+1)
	}

	// Counting sort keeps rows ascending within a colour.
	start := make([]int, k+1)
	for _, c := range colors {
		start[c+1]++
	}
	for c := 0; c < k; c++ {
		start[c+1] += start[c]
	}
	out := make([]int, len(colors))
	for i, c := range colors {
		out[start[c]] = i
		start[c]++
	}

	return out, nil
}

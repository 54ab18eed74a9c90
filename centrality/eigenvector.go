// Package centrality: eigenvector centrality by power iteration.
package centrality

import (
	"math"

	"github.com/graphen-io/graphen/core"
)

const (
	// eigenTolerance stops the iteration once the L1 change of the
	// normalized vector drops below it.
	eigenTolerance = 1e-6

	// eigenMaxIterations bounds the power iteration.
	eigenMaxIterations = 100
)

// Eigenvector returns the eigenvector centrality of every vertex:
// repeated propagation of weighted neighbor scores, L2-normalized each
// round, until the L1 change falls below 1e-6 or 100 iterations elapse.
// On directed graphs a vertex accumulates the scores of its
// in-neighbors. Isolated vertices score zero.
// Complexity: O(iterations · (V + E)).
func Eigenvector(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Order()
	out := make(map[string]float64, n)
	if n == 0 {
		return out, nil
	}

	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1 / math.Sqrt(float64(n))
	}

	for iter := 0; iter < eigenMaxIterations; iter++ {
		for v := 0; v < n; v++ {
			var sum float64
			for _, u := range g.InNeighborIndexes(v) {
				w, _ := g.WeightAt(u, v)
				sum += w * x[u]
			}
			next[v] = sum
		}

		var norm float64
		for _, s := range next {
			norm += s * s
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			// no edges at all; everything stays zero
			for i := range x {
				x[i] = 0
			}
			break
		}

		var change float64
		for i := range next {
			next[i] /= norm
			change += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if change < eigenTolerance {
			break
		}
	}

	for i := 0; i < n; i++ {
		out[g.IDOf(i)] = x[i]
	}

	return out, nil
}

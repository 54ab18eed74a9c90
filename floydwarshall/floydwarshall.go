// Package floydwarshall implements the Floyd–Warshall all-pairs
// shortest-path closure over a core.Graph.
//
// The algorithm runs on the dense adjacency matrix (+Inf off-diagonal
// for missing edges, 0 diagonal) with the canonical k → i → j loop
// order, relaxing on strict improvement only so accumulation is
// deterministic. A next-hop matrix is maintained alongside the
// distances for O(path length) reconstruction.
//
// Unlike dijkstra, negative edge weights are allowed; only negative
// cycles are rejected (post-closure diagonal check).
//
// Complexity: O(V³) time, O(V²) space.
package floydwarshall

import (
	"math"

	"github.com/graphen-io/graphen/core"
)

// AllPairs computes shortest distances and first hops between every
// ordered pair of vertices of g.
//
// Returns ErrGraphNil on nil input and ErrNegativeCycle when any cycle
// has negative total weight.
func AllPairs(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids, dist := g.AdjacencyMatrix()
	n := len(ids)

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// next[i][j] starts at j for every direct edge, -1 otherwise
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				next[i][j] = i
			case !math.IsInf(dist[i][j], 1):
				next[i][j] = j
			default:
				next[i][j] = -1
			}
		}
	}

	var ik, cand float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik = dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if math.IsInf(dist[k][j], 1) {
					continue
				}
				cand = ik + dist[k][j]
				if cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return &Result{ids: ids, index: index, dist: dist, next: next}, nil
}

// Package centrality: local and global clustering coefficients.
package centrality

import "github.com/graphen-io/graphen/core"

// Clustering returns the local clustering coefficient of one vertex:
// 2·triangles / (k·(k−1)) where k is its neighbor count and triangles
// the number of adjacent neighbor pairs. Vertices with fewer than two
// neighbors score zero. Adjacency between neighbors counts in either
// direction, so the measure degrades gracefully on directed graphs.
// Complexity: O(k²).
func Clustering(g *core.Graph, id string) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	v, ok := g.IndexOf(id)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return localClustering(g, v), nil
}

// GlobalClustering returns the mean local clustering coefficient over
// all vertices (0 for the empty graph).
// Complexity: O(Σ k²).
func GlobalClustering(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.Order()
	if n == 0 {
		return 0, nil
	}

	var sum float64
	for v := 0; v < n; v++ {
		sum += localClustering(g, v)
	}

	return sum / float64(n), nil
}

func localClustering(g *core.Graph, v int) float64 {
	nbrs := g.NeighborIndexes(v)
	k := len(nbrs)
	if k < 2 {
		return 0
	}

	triangles := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if _, ok := g.WeightAt(nbrs[i], nbrs[j]); ok {
				triangles++
				continue
			}
			if _, ok := g.WeightAt(nbrs[j], nbrs[i]); ok {
				triangles++
			}
		}
	}

	return 2 * float64(triangles) / (float64(k) * float64(k-1))
}

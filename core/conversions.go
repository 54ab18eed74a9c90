// Package core: exports to dense matrix and nested-map representations.
package core

import (
	"math"
	"sort"
)

// AdjacencyMatrix returns the vertex IDs in sorted order and the dense
// weight matrix aligned to that order. Missing edges are +Inf off the
// diagonal and the diagonal is 0, the convention expected by dense
// all-pairs algorithms. This is the only place absence is rendered as an
// infinity; the Graph API itself reports absence via comma-ok.
// Complexity: O(V² + E).
func (g *Graph) AdjacencyMatrix() ([]string, [][]float64) {
	n := len(g.ids)
	ids := g.Vertices()

	// sorted position of each dense index
	pos := make([]int, n)
	for p, id := range ids {
		pos[g.index[id]] = p
	}

	mat := make([][]float64, n)
	for i := range mat {
		row := make([]float64, n)
		for j := range row {
			row[j] = math.Inf(1)
		}
		row[i] = 0
		mat[i] = row
	}
	for i, row := range g.adj {
		for j, w := range row {
			mat[pos[i]][pos[j]] = w
		}
	}

	return ids, mat
}

// AdjacencyList returns a deep copy of the adjacency as nested
// ID-keyed maps: result[u][v] = weight. Vertices without edges map to an
// empty inner map.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(g.ids))
	for i, id := range g.ids {
		inner := make(map[string]float64, len(g.adj[i]))
		for j, w := range g.adj[i] {
			inner[g.ids[j]] = w
		}
		out[id] = inner
	}

	return out
}

// Edge is a plain (From, To, Weight) triple as reported by Edges.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Edges returns every edge once, sorted by (From, To) for determinism.
// For undirected graphs each edge is reported with From < To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for i, row := range g.adj {
		for j, w := range row {
			if !g.directed && g.ids[i] > g.ids[j] {
				continue // mirrored entry; report once from the lesser ID
			}
			out = append(out, Edge{From: g.ids[i], To: g.ids[j], Weight: w})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].From != out[b].From {
			return out[a].From < out[b].From
		}

		return out[a].To < out[b].To
	})

	return out
}

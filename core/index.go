// Package core: dense-index read API for algorithm hot loops.
//
// Every vertex occupies one index in [0, Order()). Indices are stable
// across queries and edge mutations but are invalidated by RemoveVertex
// (which backfills the freed slot). Algorithms snapshot the index space
// once, work entirely over ints, and translate back to IDs only when
// building their results.
package core

import "sort"

// Order returns the number of vertices (the valid index range).
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.ids) }

// IndexOf returns the dense index of the vertex ID.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// IDOf returns the vertex ID stored at index i, or "" if out of range.
// Complexity: O(1).
func (g *Graph) IDOf(i int) string {
	if i < 0 || i >= len(g.ids) {
		return ""
	}

	return g.ids[i]
}

// WeightAt returns the weight of edge i→j by index, comma-ok on absence.
// Complexity: O(1).
func (g *Graph) WeightAt(i, j int) (float64, bool) {
	if i < 0 || i >= len(g.adj) {
		return 0, false
	}
	w, ok := g.adj[i][j]

	return w, ok
}

// ForEachNeighbor calls fn for every out-neighbor of index i with the
// edge weight. Iteration order is unspecified; use NeighborIndexes when
// a deterministic visit order matters.
// Complexity: O(d).
func (g *Graph) ForEachNeighbor(i int, fn func(j int, w float64)) {
	for j, w := range g.adj[i] {
		fn(j, w)
	}
}

// NeighborIndexes returns the out-neighbor indices of i in ascending
// order, for deterministic traversal.
// Complexity: O(d log d).
func (g *Graph) NeighborIndexes(i int) []int {
	return sortedKeys(g.adj[i])
}

// InNeighborIndexes returns the in-neighbor indices of i in ascending
// order. For undirected graphs this equals NeighborIndexes.
// Complexity: O(d log d).
func (g *Graph) InNeighborIndexes(i int) []int {
	if !g.directed {
		return sortedKeys(g.adj[i])
	}

	return sortedKeys(g.in[i])
}

// sortedKeys extracts and sorts the key set of a neighbor row.
func sortedKeys(row map[int]float64) []int {
	if len(row) == 0 {
		return nil
	}
	out := make([]int, 0, len(row))
	for j := range row {
		out = append(out, j)
	}
	sort.Ints(out)

	return out
}

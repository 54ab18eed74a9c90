// Package core: read-only, string-keyed query surface.
//
// Lookup policy: queries never fail. A missing vertex or edge yields the
// zero result (nil slice, 0, ok=false) so downstream shortest-path code
// can branch on presence instead of decoding error values or IEEE
// infinities. Mutators, by contrast, report missing references as
// sentinel errors (see methods.go).
package core

import "sort"

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether the edge from→to exists. On undirected graphs
// HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	u, okU := g.index[from]
	v, okV := g.index[to]
	if !okU || !okV {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of edge from→to and whether the edge exists.
// Absence is an explicit miss (ok=false), never an infinity sentinel.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	u, okU := g.index[from]
	v, okV := g.index[to]
	if !okU || !okV {
		return 0, false
	}
	w, ok := g.adj[u][v]

	return w, ok
}

// Neighbors returns the sorted IDs adjacent to id: out-neighbors for
// directed graphs, all neighbors for undirected ones. A missing vertex
// yields nil.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.idsOf(g.adj[i])
}

// InNeighbors returns the sorted IDs with an edge into id. For undirected
// graphs this equals Neighbors. A missing vertex yields nil.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	if !g.directed {
		return g.idsOf(g.adj[i])
	}

	return g.idsOf(g.in[i])
}

// Degree returns the number of incident edges: out-degree plus in-degree
// for directed graphs, the neighbor count for undirected ones.
func (g *Graph) Degree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	if g.directed {
		return len(g.adj[i]) + len(g.in[i])
	}

	return len(g.adj[i])
}

// OutDegree returns the number of outgoing edges (== Degree when undirected).
func (g *Graph) OutDegree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}

	return len(g.adj[i])
}

// InDegree returns the number of incoming edges (== Degree when undirected).
func (g *Graph) InDegree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	if !g.directed {
		return len(g.adj[i])
	}

	return len(g.in[i])
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns the number of edges; undirected edges count once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	sort.Strings(out)

	return out
}

// VertexProperties returns the property record of the vertex, or nil if
// the vertex is missing or carries no properties. The map is live; treat
// it as read-only.
func (g *Graph) VertexProperties(id string) map[string]any {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.vprops[i]
}

// EdgeProperties returns the property record of edge from→to, or nil.
// For undirected graphs both orientations share one record.
func (g *Graph) EdgeProperties(from, to string) map[string]any {
	u, okU := g.index[from]
	v, okV := g.index[to]
	if !okU || !okV {
		return nil
	}

	return g.eprops[u][v]
}

// idsOf maps a neighbor row to sorted vertex IDs.
func (g *Graph) idsOf(row map[int]float64) []string {
	if len(row) == 0 {
		return nil
	}
	out := make([]string, 0, len(row))
	for j := range row {
		out = append(out, g.ids[j])
	}
	sort.Strings(out)

	return out
}

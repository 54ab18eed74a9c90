// Package mst: Kruskal's algorithm over sorted edges with union-find
// (path compression + union by rank).
package mst

import (
	"sort"

	"github.com/graphen-io/graphen/core"
)

// Kruskal computes the minimum spanning tree of an undirected weighted
// connected graph. Edges are taken in ascending weight order (ties
// broken by the (From, To) order of core.Edges) and merged with a
// disjoint-set structure; an edge joins the tree iff its endpoints were
// in different components.
//
// Errors: ErrGraphNil / ErrDirectedGraph / ErrUnweightedGraph on
// invalid input, ErrDisconnected when the edges cannot span all
// vertices.
// Complexity: O(E log E) time, O(V + E) space.
func Kruskal(g *core.Graph) (*core.Graph, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	n := g.Order()
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := newUnionFind(n)
	tree := g.CloneEmpty()
	var total float64

	selected := 0
	for _, e := range edges {
		u, _ := g.IndexOf(e.From)
		v, _ := g.IndexOf(e.To)
		if !dsu.union(u, v) {
			continue // would close a cycle
		}
		if err := tree.AddEdge(e.From, e.To, core.WithWeight(e.Weight)); err != nil {
			return nil, 0, err
		}
		total += e.Weight
		selected++
		if selected == n-1 {
			break
		}
	}

	if selected < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// unionFind is a dense-index disjoint-set forest.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

// find returns the set representative of x, halving the path as it walks.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the sets of a and b by rank; reports whether a merge
// actually happened.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}

	return true
}

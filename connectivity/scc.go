// Package connectivity: strongly connected components via Kosaraju's
// two-pass algorithm.
//
// Pass one records DFS finish order over the forward adjacency; pass
// two walks the reverse adjacency in decreasing finish order, and each
// second-pass tree is one strongly connected component. Both passes use
// explicit stacks.
//
// Complexity: O(V + E) time, O(V) space.
package connectivity

import (
	"sort"

	"github.com/graphen-io/graphen/core"
)

// StronglyConnected returns the strongly connected components of a
// directed graph. Every vertex appears in exactly one component; the
// members of each component are sorted, and components are ordered by
// their smallest member.
//
// Returns ErrGraphNil on nil input and ErrUndirectedGraph for
// undirected graphs.
func StronglyConnected(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	n := g.Order()
	finish := finishOrder(g, n)

	// second pass: reverse adjacency, roots in decreasing finish order
	visited := make([]bool, n)
	comps := make([][]string, 0)
	for i := n - 1; i >= 0; i-- {
		root := finish[i]
		if visited[root] {
			continue
		}
		comp := collectReverse(g, root, visited)
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(a, b int) bool {
		return comps[a][0] < comps[b][0]
	})

	return comps, nil
}

// finishOrder runs the first Kosaraju pass and returns vertex indices
// in increasing finish time.
func finishOrder(g *core.Graph, n int) []int {
	visited := make([]bool, n)
	order := make([]int, 0, n)

	type pass1frame struct {
		idx  int
		nbrs []int
		next int
	}

	for _, rootID := range g.Vertices() {
		root, _ := g.IndexOf(rootID)
		if visited[root] {
			continue
		}
		visited[root] = true
		stack := []pass1frame{{idx: root, nbrs: g.NeighborIndexes(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				order = append(order, top.idx)
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.nbrs[top.next]
			top.next++
			if visited[w] {
				continue
			}
			visited[w] = true
			stack = append(stack, pass1frame{idx: w, nbrs: g.NeighborIndexes(w)})
		}
	}

	return order
}

// collectReverse gathers every vertex reachable from root along
// reversed edges, marking them visited.
func collectReverse(g *core.Graph, root int, visited []bool) []string {
	visited[root] = true
	comp := []string{g.IDOf(root)}
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.InNeighborIndexes(u) {
			if visited[w] {
				continue
			}
			visited[w] = true
			comp = append(comp, g.IDOf(w))
			stack = append(stack, w)
		}
	}

	return comp
}

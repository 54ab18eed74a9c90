// Package dfs: cycle detection for directed and undirected graphs.
//
// Directed graphs use three-color marking over an explicit stack: an edge
// into a gray (in-progress) vertex is a back edge and closes a cycle.
// Undirected graphs use parent-skip DFS: any visited neighbor other than
// the vertex we arrived from closes a cycle, since undirected DFS
// produces no cross edges.
package dfs

import (
	"sort"

	"github.com/graphen-io/graphen/core"
)

// vertex colors for the directed walk
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// DetectCycle reports whether g contains a cycle and, if so, returns one
// example cycle as its vertex sequence (not closed; the edge from the
// last vertex back to the first is implied). Roots and neighbors are
// taken in ascending ID order, so the reported cycle is deterministic.
//
// Returns ErrGraphNil on nil input.
// Complexity: O(V + E).
func DetectCycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	var cycle []string
	if g.Directed() {
		cycle = detectDirected(g)
	} else {
		cycle = detectUndirected(g)
	}

	return cycle, cycle != nil, nil
}

// detectDirected runs the three-color walk and returns the first back-edge
// cycle, or nil.
func detectDirected(g *core.Graph) []string {
	n := g.Order()
	color := make([]int, n)
	pos := make([]int, n) // stack position of gray vertices

	for _, rootID := range g.Vertices() {
		root, _ := g.IndexOf(rootID)
		if color[root] != white {
			continue
		}

		stack := []frame{{idx: root, nbrs: sortedByID(g, root)}}
		color[root] = gray
		pos[root] = 0
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				color[top.idx] = black
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.nbrs[top.next]
			top.next++
			switch color[w] {
			case white:
				color[w] = gray
				pos[w] = len(stack)
				stack = append(stack, frame{idx: w, nbrs: sortedByID(g, w)})
			case gray:
				// back edge: the cycle is the stack segment from w upward
				cycle := make([]string, 0, len(stack)-pos[w])
				for _, f := range stack[pos[w]:] {
					cycle = append(cycle, g.IDOf(f.idx))
				}

				return cycle
			}
		}
	}

	return nil
}

// uframe extends frame with the index we arrived from, for parent-skip.
type uframe struct {
	idx    int
	parent int
	nbrs   []int
	next   int
}

// detectUndirected runs parent-skip DFS and returns the first cycle, or nil.
func detectUndirected(g *core.Graph) []string {
	n := g.Order()
	visited := make([]bool, n)
	parent := make([]int, n)

	for _, rootID := range g.Vertices() {
		root, _ := g.IndexOf(rootID)
		if visited[root] {
			continue
		}

		visited[root] = true
		parent[root] = -1
		stack := []uframe{{idx: root, parent: -1, nbrs: sortedByID(g, root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.nbrs[top.next]
			top.next++
			if w == top.parent {
				continue
			}
			if visited[w] {
				// back edge to an ancestor: walk parents from here up to w
				cycle := []string{}
				for v := top.idx; v != w; v = parent[v] {
					cycle = append(cycle, g.IDOf(v))
				}
				cycle = append(cycle, g.IDOf(w))
				reverse(cycle)

				return cycle
			}
			visited[w] = true
			parent[w] = top.idx
			stack = append(stack, uframe{idx: w, parent: top.idx, nbrs: sortedByID(g, w)})
		}
	}

	return nil
}

// sortedByID orders the out-neighbors of idx by vertex ID.
func sortedByID(g *core.Graph, idx int) []int {
	nbrs := g.NeighborIndexes(idx)
	sort.Slice(nbrs, func(a, b int) bool {
		return g.IDOf(nbrs[a]) < g.IDOf(nbrs[b])
	})

	return nbrs
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

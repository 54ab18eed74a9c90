// Package connectivity: articulation points and bridges via one
// iterative low-link walk.
//
// The walk computes discovery and low-link numbers over dense vertex
// indices with an explicit stack. A non-root vertex u is an
// articulation point when some DFS child v has low[v] ≥ disc[u]; the
// root is one when it has two or more DFS children. The edge u-v is a
// bridge when low[v] > disc[u] (strict: the subtree has no back edge
// past u at all).
//
// Complexity: O(V + E) time, O(V) space.
package connectivity

import (
	"sort"

	"github.com/graphen-io/graphen/core"
)

// ArticulationPoints returns the cut vertices of an undirected graph in
// ascending ID order. Removing any of them increases the number of
// connected components.
//
// Returns ErrGraphNil on nil input and ErrDirectedGraph for directed
// graphs.
func ArticulationPoints(g *core.Graph) ([]string, error) {
	st, err := runLowlink(g)
	if err != nil {
		return nil, err
	}

	points := make([]string, 0)
	for i, cut := range st.isCut {
		if cut {
			points = append(points, g.IDOf(i))
		}
	}
	sort.Strings(points)

	return points, nil
}

// Bridges returns the cut edges of an undirected graph as (From, To)
// pairs with From < To, sorted for determinism. Removing any of them
// disconnects its endpoints.
//
// Returns ErrGraphNil on nil input and ErrDirectedGraph for directed
// graphs.
func Bridges(g *core.Graph) ([]core.Edge, error) {
	st, err := runLowlink(g)
	if err != nil {
		return nil, err
	}

	sort.Slice(st.bridges, func(a, b int) bool {
		if st.bridges[a].From != st.bridges[b].From {
			return st.bridges[a].From < st.bridges[b].From
		}

		return st.bridges[a].To < st.bridges[b].To
	})

	return st.bridges, nil
}

// lowlinkState is the shared output of one walk over all components.
type lowlinkState struct {
	disc    []int
	low     []int
	isCut   []bool
	bridges []core.Edge
}

// llframe is one explicit-stack entry of the low-link walk.
type llframe struct {
	idx    int
	parent int
	nbrs   []int
	next   int
}

// runLowlink performs the iterative DFS over every component, filling
// discovery/low numbers, cut-vertex flags, and the bridge list.
func runLowlink(g *core.Graph) (*lowlinkState, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	n := g.Order()
	st := &lowlinkState{
		disc:  make([]int, n),
		low:   make([]int, n),
		isCut: make([]bool, n),
	}
	for i := range st.disc {
		st.disc[i] = -1
	}

	clock := 0
	for _, rootID := range g.Vertices() {
		root, _ := g.IndexOf(rootID)
		if st.disc[root] >= 0 {
			continue
		}
		clock = st.walk(g, root, clock)
	}

	return st, nil
}

// walk explores one component from root and returns the advanced clock.
func (st *lowlinkState) walk(g *core.Graph, root, clock int) int {
	st.disc[root] = clock
	st.low[root] = clock
	clock++
	rootChildren := 0

	stack := []llframe{{idx: root, parent: -1, nbrs: g.NeighborIndexes(root)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.idx

		if top.next >= len(top.nbrs) {
			// u fully explored; fold its low into the parent and apply
			// the child rules there
			stack = stack[:len(stack)-1]
			if top.parent < 0 {
				continue
			}
			p := top.parent
			if st.low[u] < st.low[p] {
				st.low[p] = st.low[u]
			}
			if p == root {
				rootChildren++
			} else if st.low[u] >= st.disc[p] {
				st.isCut[p] = true
			}
			if st.low[u] > st.disc[p] {
				st.bridges = append(st.bridges, orientEdge(g, p, u))
			}
			continue
		}

		w := top.nbrs[top.next]
		top.next++
		if w == top.parent {
			continue
		}
		if st.disc[w] >= 0 {
			// back edge
			if st.disc[w] < st.low[u] {
				st.low[u] = st.disc[w]
			}
			continue
		}
		st.disc[w] = clock
		st.low[w] = clock
		clock++
		stack = append(stack, llframe{idx: w, parent: u, nbrs: g.NeighborIndexes(w)})
	}

	st.isCut[root] = rootChildren > 1

	return clock
}

// orientEdge renders the bridge u-v with the lesser ID first.
func orientEdge(g *core.Graph, u, v int) core.Edge {
	from, to := g.IDOf(u), g.IDOf(v)
	if from > to {
		from, to = to, from
	}
	w, _ := g.WeightAt(u, v)

	return core.Edge{From: from, To: to, Weight: w}
}

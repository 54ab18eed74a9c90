// Package tsp implements the MST-based 2-approximation for the
// travelling-salesman tour on metric graphs.
//
// The tour is obtained by building a minimum spanning tree from the
// start vertex (Prim), walking the tree in iterative DFS preorder, and
// closing the cycle back to the start. Skipping already-visited
// vertices in the preorder walk shortcuts tree edges with direct edges;
// on graphs satisfying the triangle inequality the resulting tour costs
// at most twice the optimum. The graph itself must supply every
// shortcut edge — the metric completeness contract is the caller's.
//
// Complexity: O(E log V) for the tree plus O(V + E) for the walk.
package tsp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/graphen-io/graphen/core"
	"github.com/graphen-io/graphen/mst"
)

// Sentinel errors returned by Approx. Precondition failures from the
// spanning-tree phase (nil graph, directed or unweighted input,
// unknown start, disconnected graph) surface as wrapped mst errors.
var (
	// ErrIncompleteTour is returned when two consecutive tour stops have
	// no direct edge, i.e. the graph is not metrically complete enough.
	ErrIncompleteTour = errors.New("tsp: no direct edge between consecutive tour stops")
)

// Result holds one approximate tour.
//
//   - Tour lists the visit order, starting and ending at the start
//     vertex (a single-vertex graph yields just [start]).
//   - Cost is the summed weight of the direct edges along the tour.
type Result struct {
	Tour []string
	Cost float64
}

// Approx computes a 2-approximate travelling-salesman tour of an
// undirected weighted connected graph, anchored at startID.
func Approx(g *core.Graph, startID string) (*Result, error) {
	tree, _, err := mst.Prim(g, startID)
	if err != nil {
		return nil, fmt.Errorf("tsp: spanning tree: %w", err)
	}

	tour := preorder(tree, startID)
	if len(tour) == 1 {
		return &Result{Tour: tour}, nil
	}
	tour = append(tour, startID)

	var cost float64
	for i := 1; i < len(tour); i++ {
		w, ok := g.Weight(tour[i-1], tour[i])
		if !ok {
			return nil, fmt.Errorf("%w: %s → %s", ErrIncompleteTour, tour[i-1], tour[i])
		}
		cost += w
	}

	return &Result{Tour: tour, Cost: cost}, nil
}

// preorder walks the tree depth-first from start with an explicit
// stack, visiting children in ascending ID order.
func preorder(tree *core.Graph, startID string) []string {
	n := tree.Order()
	start, _ := tree.IndexOf(startID)

	type frame struct {
		idx  int
		nbrs []int
		next int
	}

	visited := make([]bool, n)
	order := make([]string, 0, n)

	visited[start] = true
	order = append(order, startID)
	stack := []frame{{idx: start, nbrs: sortedByID(tree, start)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := top.nbrs[top.next]
		top.next++
		if visited[w] {
			continue
		}
		visited[w] = true
		order = append(order, tree.IDOf(w))
		stack = append(stack, frame{idx: w, nbrs: sortedByID(tree, w)})
	}

	return order
}

// sortedByID orders the neighbors of idx by vertex ID.
func sortedByID(g *core.Graph, idx int) []int {
	nbrs := g.NeighborIndexes(idx)
	sort.Slice(nbrs, func(a, b int) bool {
		return g.IDOf(nbrs[a]) < g.IDOf(nbrs[b])
	})

	return nbrs
}

// Package mst: Prim's algorithm, growing the tree outward from a root
// via a min-heap of frontier edges.
package mst

import (
	"container/heap"

	"github.com/graphen-io/graphen/core"
)

// Prim computes the minimum spanning tree of an undirected weighted
// connected graph, starting from root. The tree is returned as a new
// graph over the same vertex set holding only the selected edges.
//
// Errors: ErrGraphNil / ErrDirectedGraph / ErrUnweightedGraph on
// invalid input, ErrRootNotFound for an unknown root, ErrDisconnected
// when some vertex is unreachable.
// Complexity: O(E log V) time, O(V + E) space.
func Prim(g *core.Graph, root string) (*core.Graph, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	start, ok := g.IndexOf(root)
	if !ok {
		return nil, 0, ErrRootNotFound
	}

	n := g.Order()
	visited := make([]bool, n)
	tree := g.CloneEmpty()
	var total float64

	pq := &candidatePQ{}
	heap.Init(pq)

	visited[start] = true
	pushFrontier(g, pq, visited, start)

	selected := 0
	for pq.Len() > 0 && selected < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.to] {
			continue // both endpoints already inside the tree
		}
		visited[c.to] = true
		if err := tree.AddEdge(g.IDOf(c.from), g.IDOf(c.to), core.WithWeight(c.weight)); err != nil {
			return nil, 0, err
		}
		total += c.weight
		selected++
		pushFrontier(g, pq, visited, c.to)
	}

	if selected < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// pushFrontier offers every edge from u to a not-yet-visited vertex.
func pushFrontier(g *core.Graph, pq *candidatePQ, visited []bool, u int) {
	for _, v := range g.NeighborIndexes(u) {
		if visited[v] {
			continue
		}
		w, _ := g.WeightAt(u, v)
		heap.Push(pq, &candidate{from: u, to: v, weight: w})
	}
}

// candidate is one frontier edge waiting in the heap.
type candidate struct {
	from   int
	to     int
	weight float64
}

// candidatePQ is a min-heap of frontier edges ordered by weight, with
// (to, from) index tie-breaking so equal-weight trees are deterministic.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	if pq[i].to != pq[j].to {
		return pq[i].to < pq[j].to
	}

	return pq[i].from < pq[j].from
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}

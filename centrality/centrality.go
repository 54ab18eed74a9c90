// Package centrality implements classical vertex importance measures
// over a core.Graph: degree, closeness, betweenness, and eigenvector
// centrality, plus local and global clustering coefficients.
//
// The distance-based measures run one Dijkstra per vertex over dense
// indices; on unweighted graphs every edge carries the default weight 1,
// so the same machinery covers hop distances. All maps are keyed by
// vertex ID and cover every vertex of the graph.
package centrality

import (
	"container/heap"

	"github.com/graphen-io/graphen/core"
)

// Degree returns the degree centrality of every vertex: its degree
// divided by n−1. Directed graphs use the total degree (in + out).
// Graphs with fewer than two vertices score zero.
// Complexity: O(V + E).
func Degree(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	out := make(map[string]float64, n)
	for _, id := range g.Vertices() {
		if n < 2 {
			out[id] = 0
			continue
		}
		out[id] = float64(g.Degree(id)) / float64(n-1)
	}

	return out, nil
}

// Closeness returns, for every vertex v, reachable/((n−1)·Σdist) where
// reachable counts the other vertices v can reach and Σdist sums the
// shortest-path distances to them. Vertices reaching nothing score zero.
// Complexity: O(V · (V + E) log V).
func Closeness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	n := g.Order()
	out := make(map[string]float64, n)
	dist := make([]float64, n)
	reached := make([]bool, n)
	prev := make([]int, n)
	for _, id := range g.Vertices() {
		src, _ := g.IndexOf(id)
		shortestFrom(g, src, dist, reached, prev)

		var sum float64
		reachable := 0
		for i := 0; i < n; i++ {
			if i == src || !reached[i] {
				continue
			}
			reachable++
			sum += dist[i]
		}
		if n < 2 || reachable == 0 || sum == 0 {
			out[id] = 0
			continue
		}
		out[id] = float64(reachable) / (float64(n-1) * sum)
	}

	return out, nil
}

// Betweenness returns, for every vertex, the number of ordered (s, t)
// pairs whose shortest path passes through it as an interior vertex,
// normalized by (n−1)(n−2). One shortest path per pair is counted, the
// one picked by deterministic Dijkstra tie-breaking.
// Complexity: O(V · (V + E) log V + V²) path walks.
func Betweenness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	n := g.Order()
	score := make([]float64, n)
	dist := make([]float64, n)
	reached := make([]bool, n)
	prev := make([]int, n)
	for s := 0; s < n; s++ {
		shortestFrom(g, s, dist, reached, prev)
		for t := 0; t < n; t++ {
			if t == s || !reached[t] {
				continue
			}
			// walk the predecessor chain, crediting interior vertices
			for v := prev[t]; v >= 0 && v != s; v = prev[v] {
				score[v]++
			}
		}
	}

	out := make(map[string]float64, n)
	norm := float64(n-1) * float64(n-2)
	for i := 0; i < n; i++ {
		if norm > 0 {
			out[g.IDOf(i)] = score[i] / norm
		} else {
			out[g.IDOf(i)] = 0
		}
	}

	return out, nil
}

// checkWeights rejects negative edge weights up front.
func checkWeights(g *core.Graph) error {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return ErrNegativeWeight
		}
	}

	return nil
}

// shortestFrom fills dist/reached/prev with single-source shortest
// paths from src, reusing the caller's scratch slices across sources.
func shortestFrom(g *core.Graph, src int, dist []float64, reached []bool, prev []int) {
	n := g.Order()
	settled := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = 0
		reached[i] = false
		prev[i] = -1
	}
	reached[src] = true

	pq := &distPQ{{idx: src, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		top := heap.Pop(pq).(distItem)
		u := top.idx
		if settled[u] {
			continue
		}
		settled[u] = true
		du := dist[u]
		for _, v := range g.NeighborIndexes(u) {
			if settled[v] {
				continue
			}
			w, _ := g.WeightAt(u, v)
			nd := du + w
			if reached[v] && nd >= dist[v] {
				continue
			}
			dist[v] = nd
			reached[v] = true
			prev[v] = u
			heap.Push(pq, distItem{idx: v, dist: nd})
		}
	}

	// only settled vertices count as reached
	for i := 0; i < n; i++ {
		reached[i] = reached[i] && settled[i]
	}
}

// distItem and distPQ form the min-heap behind shortestFrom.
type distItem struct {
	idx  int
	dist float64
}

type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

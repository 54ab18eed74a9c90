// Package flow implements the Edmonds–Karp maximum-flow algorithm
// (Ford–Fulkerson with BFS augmenting-path selection) over a directed
// core.Graph whose edge weights act as capacities.
//
// The residual network is a dense V×V matrix: forward entries start at
// the edge capacity, reverse entries at zero. Each round, a BFS finds
// the shortest augmenting path in the residual network, the bottleneck
// capacity is pushed along it, and residual entries are updated in both
// directions. BFS scans neighbor indices in ascending order, so the
// augmentation sequence is deterministic.
//
// Complexity: O(V·E²) time, O(V²) space for the residual matrix.
package flow

import (
	"fmt"

	"github.com/graphen-io/graphen/core"
)

// MaxFlow computes the maximum flow from sourceID to sinkID in g.
// Edge weights are the capacities; on unweighted graphs every edge has
// unit capacity.
//
// Validation order: ErrGraphNil, ErrUndirectedGraph, ErrSourceNotFound,
// ErrSinkNotFound, ErrSourceIsSink, then ErrNegativeCapacity from the
// edge pre-scan.
func MaxFlow(g *core.Graph, sourceID, sinkID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	source, ok := g.IndexOf(sourceID)
	if !ok {
		return nil, ErrSourceNotFound
	}
	sink, ok := g.IndexOf(sinkID)
	if !ok {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s capacity=%v", ErrNegativeCapacity, e.From, e.To, e.Weight)
		}
	}

	n := g.Order()
	residual := make([][]float64, n)
	for i := range residual {
		residual[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		g.ForEachNeighbor(i, func(j int, w float64) {
			residual[i][j] = w
		})
	}

	var value float64
	parent := make([]int, n)
	for {
		bottleneck := augmentingPath(residual, source, sink, parent)
		if bottleneck == 0 {
			break
		}
		value += bottleneck
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
	}

	return &Result{Value: value, Flows: collectFlows(g, residual)}, nil
}

// augmentingPath runs BFS over positive residual capacities and returns
// the bottleneck of the shortest source→sink path (0 when none exists),
// leaving the path recorded in parent.
func augmentingPath(residual [][]float64, source, sink int, parent []int) float64 {
	n := len(residual)
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if parent[v] >= 0 || residual[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				return bottleneckOf(residual, parent, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return 0
}

// bottleneckOf walks the recorded path backwards and returns its
// minimum residual capacity.
func bottleneckOf(residual [][]float64, parent []int, source, sink int) float64 {
	bottleneck := residual[parent[sink]][sink]
	for v := parent[sink]; v != source; v = parent[v] {
		if r := residual[parent[v]][v]; r < bottleneck {
			bottleneck = r
		}
	}

	return bottleneck
}

// collectFlows derives per-original-edge flow from the drained residual
// capacities: flow(u→v) = capacity − residual, clamped at zero when the
// residual grew past the capacity through reverse pushes.
func collectFlows(g *core.Graph, residual [][]float64) map[string]map[string]float64 {
	flows := make(map[string]map[string]float64)
	for _, e := range g.Edges() {
		u, _ := g.IndexOf(e.From)
		v, _ := g.IndexOf(e.To)
		f := e.Weight - residual[u][v]
		if f < 0 {
			f = 0
		}
		if flows[e.From] == nil {
			flows[e.From] = make(map[string]float64)
		}
		flows[e.From][e.To] = f
	}

	return flows
}

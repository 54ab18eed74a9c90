// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a weighted core.Graph.
//
// Vertices are settled in order of increasing distance using a binary
// min-heap with the lazy decrease-key strategy: improved distances push
// duplicate heap entries, and stale entries are discarded when popped.
// All edge weights must be non-negative; a pre-scan rejects the graph
// otherwise.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/graphen-io/graphen/core"
)

// ShortestPaths computes minimum-cost paths from sourceID to every
// reachable vertex of g (or until the WithTarget vertex is finalized).
//
// Validation order: ErrGraphNil, ErrOptionViolation, ErrUnweightedGraph,
// ErrSourceNotFound, ErrTargetNotFound, then ErrNegativeWeight from the
// edge pre-scan.
func ShortestPaths(g *core.Graph, sourceID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	source, ok := g.IndexOf(sourceID)
	if !ok {
		return nil, ErrSourceNotFound
	}
	target := -1
	if o.Target != "" {
		if target, ok = g.IndexOf(o.Target); !ok {
			return nil, ErrTargetNotFound
		}
	}
	if err := scanWeights(g); err != nil {
		return nil, err
	}

	r := newRunner(g, o, source, target)
	r.run()

	return r.collect(), nil
}

// scanWeights fails fast on any negative edge weight.
func scanWeights(g *core.Graph) error {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state of a single execution. All hot-loop
// state is indexed by dense vertex position; string IDs only appear
// when the result is materialized.
type runner struct {
	g       *core.Graph
	opts    Options
	source  int
	target  int // -1 when unset
	dist    []float64
	reached []bool
	settled []bool
	prev    []int
	pq      itemPQ
}

func newRunner(g *core.Graph, o Options, source, target int) *runner {
	n := g.Order()
	r := &runner{
		g:       g,
		opts:    o,
		source:  source,
		target:  target,
		dist:    make([]float64, n),
		reached: make([]bool, n),
		settled: make([]bool, n),
		prev:    make([]int, n),
		pq:      make(itemPQ, 0, n),
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	r.dist[source] = 0
	r.reached[source] = true
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item{idx: source, dist: 0})

	return r
}

// run settles vertices in increasing distance order until the heap
// drains, the target finalizes, or the distance cap is crossed.
func (r *runner) run() {
	for r.pq.Len() > 0 {
		top := heap.Pop(&r.pq).(*item)
		u := top.idx
		if r.settled[u] {
			continue // stale lazy-decrease-key entry
		}
		if top.dist > r.opts.MaxDistance {
			break
		}
		r.settled[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax attempts to improve the distance of every out-neighbor of u.
// Neighbors are taken in ascending index order so that equal-cost ties
// resolve the same way on every run.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, v := range r.g.NeighborIndexes(u) {
		if r.settled[v] {
			continue
		}
		w, _ := r.g.WeightAt(u, v)
		nd := du + w
		if nd > r.opts.MaxDistance {
			continue
		}
		if r.reached[v] && nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.reached[v] = true
		r.prev[v] = u
		heap.Push(&r.pq, &item{idx: v, dist: nd})
	}
}

// collect materializes the index-based state into an ID-keyed Result.
// Only settled vertices appear: a vertex merely touched before the
// search stopped early has no guaranteed-minimal distance.
func (r *runner) collect() *Result {
	res := &Result{
		Source: r.g.IDOf(r.source),
		Dist:   make(map[string]float64),
		Prev:   make(map[string]string),
	}
	for i, ok := range r.settled {
		if !ok {
			continue
		}
		id := r.g.IDOf(i)
		res.Dist[id] = r.dist[i]
		if r.prev[i] >= 0 {
			res.Prev[id] = r.g.IDOf(r.prev[i])
		}
	}

	return res
}

// item pairs a vertex with its tentative distance for heap ordering.
type item struct {
	idx  int
	dist float64
}

// itemPQ is a min-heap of *item ordered by ascending distance, with
// vertex index as tie-breaker for deterministic settle order.
type itemPQ []*item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// Package bfs implements breadth-first search over a core.Graph,
// returning visit order, hop distances, and parent links.
//
// Vertices are explored in non-decreasing edge distance from the start;
// within one frontier, neighbors are visited in ascending ID order, so
// the visit sequence is fully reproducible.
package bfs

import (
	"fmt"
	"sort"

	"github.com/graphen-io/graphen/core"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options. Edge weights are ignored; depth counts hops.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E) plus neighbor sorting for determinism.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
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

	start, ok := g.IndexOf(startID)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	id := w.graph.IDOf(idx)
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.graph.IDOf(parent)
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit fires OnDequeue, records the vertex in Order, and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.graph.IDOf(item.idx)
	w.opts.OnDequeue(id, item.depth)
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	curr := w.graph.IDOf(item.idx)
	for _, nbr := range w.sortedNeighbors(item.idx) {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(curr, w.graph.IDOf(nbr)) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.idx)
	}
}

// sortedNeighbors returns the out-neighbor indices of idx ordered by
// vertex ID, for a reproducible visit sequence.
func (w *walker) sortedNeighbors(idx int) []int {
	nbrs := w.graph.NeighborIndexes(idx)
	sort.Slice(nbrs, func(a, b int) bool {
		return w.graph.IDOf(nbrs[a]) < w.graph.IDOf(nbrs[b])
	})

	return nbrs
}

// Package dfs implements depth-first search (single tree and whole-graph
// forest) on a core.Graph, with discovery/finish timestamps, pre- and
// post-order hooks, neighbor filtering, and cancellation.
//
// The traversal maintains its own explicit work stack instead of
// recursing, so depth is bounded by heap memory rather than the
// goroutine call stack; pathological deep chains do not overflow.
//
// Complexity: O(V + E) time (plus neighbor sorting for determinism),
// O(V) memory for the stack and timestamp maps.
package dfs

import (
	"fmt"
	"sort"

	"github.com/graphen-io/graphen/core"
)

// frame is one explicit-stack entry: a vertex and its progress through
// its neighbor list.
type frame struct {
	idx  int
	nbrs []int
	next int
}

// walker holds the mutable state of one traversal (possibly spanning
// multiple roots when driven by Forest).
type walker struct {
	graph   *core.Graph
	opts    Options
	visited []bool
	clock   int // shared monotonic counter for discovery and finish
	stack   []frame
	res     *Result
	tree    []string // pre-order of the current root's component
}

// DFS performs depth-first search from startID, visiting neighbors in
// ascending ID order. Returns ErrGraphNil or ErrStartVertexNotFound for
// invalid input, a context error on cancellation, or any hook error.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, ok := g.IndexOf(startID)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	if err := w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Forest runs DFS from every unvisited vertex (roots taken in ascending
// ID order), covering disconnected components. It returns per-component
// visitation trees plus global discovery/finish maps.
func Forest(g *core.Graph, opts ...Option) (*ForestResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := newWalker(g, o)
	fr := &ForestResult{}
	for _, id := range g.Vertices() {
		idx, _ := g.IndexOf(id)
		if w.visited[idx] {
			continue
		}
		w.tree = nil
		if err := w.traverse(idx); err != nil {
			fr.Result = *w.res

			return fr, err
		}
		fr.Trees = append(fr.Trees, w.tree)
	}
	fr.Result = *w.res

	return fr, nil
}

func newWalker(g *core.Graph, o Options) *walker {
	n := g.Order()

	return &walker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res: &Result{
			Order:     make([]string, 0, n),
			Discovery: make(map[string]int, n),
			Finish:    make(map[string]int, n),
			Parent:    make(map[string]string, n),
		},
	}
}

// traverse drives the explicit stack from one root until it empties.
func (w *walker) traverse(root int) error {
	if err := w.discover(root, -1); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbrs) {
			if err := w.finish(top.idx); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(w.graph.IDOf(top.idx), w.graph.IDOf(nbr)) {
			continue
		}
		if err := w.discover(nbr, top.idx); err != nil {
			return err
		}
	}

	return nil
}

// discover stamps the vertex, records pre-order state, runs OnVisit, and
// pushes its frame.
func (w *walker) discover(idx, parent int) error {
	w.visited[idx] = true
	id := w.graph.IDOf(idx)
	w.res.Discovery[id] = w.clock
	w.clock++
	if parent >= 0 {
		w.res.Parent[id] = w.graph.IDOf(parent)
	}
	w.res.Order = append(w.res.Order, id)
	w.tree = append(w.tree, id)
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
	}
	w.stack = append(w.stack, frame{idx: idx, nbrs: w.sortedNeighbors(idx)})

	return nil
}

// finish stamps the vertex's completion and runs OnFinish.
func (w *walker) finish(idx int) error {
	id := w.graph.IDOf(idx)
	w.res.Finish[id] = w.clock
	w.clock++
	if err := w.opts.OnFinish(id); err != nil {
		return fmt.Errorf("dfs: OnFinish hook for %q: %w", id, err)
	}

	return nil
}

// sortedNeighbors orders the out-neighbors of idx by vertex ID.
func (w *walker) sortedNeighbors(idx int) []int {
	nbrs := w.graph.NeighborIndexes(idx)
	sort.Slice(nbrs, func(a, b int) bool {
		return w.graph.IDOf(nbrs[a]) < w.graph.IDOf(nbrs[b])
	})

	return nbrs
}

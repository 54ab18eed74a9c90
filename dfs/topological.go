// Package dfs: topological ordering of directed acyclic graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v. The walk is the same
// explicit-stack DFS used elsewhere in this package: vertices are
// prepended in post-order (realized as append-then-reverse), with gray
// marking for cycle detection.
package dfs

import (
	"context"

	"github.com/graphen-io/graphen/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort.
// A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort returns a topological ordering of all vertices of g.
//
// Returns ErrGraphNil on nil input, ErrUndirectedGraph when g is not
// directed, and (nil, ErrCycleDetected) when g contains any cycle.
// Ties are broken by ascending ID, so the ordering is deterministic.
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	n := g.Order()
	color := make([]int, n)
	order := make([]string, 0, n)

	for _, rootID := range g.Vertices() {
		root, _ := g.IndexOf(rootID)
		if color[root] != white {
			continue
		}

		stack := []frame{{idx: root, nbrs: sortedByID(g, root)}}
		color[root] = gray
		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				color[top.idx] = black
				order = append(order, g.IDOf(top.idx))
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.nbrs[top.next]
			top.next++
			switch color[w] {
			case gray:
				return nil, ErrCycleDetected
			case white:
				color[w] = gray
				stack = append(stack, frame{idx: w, nbrs: sortedByID(g, w)})
			}
		}
	}

	// post-order collected root-last; reverse into topological order
	reverse(order)

	return order, nil
}

// Package dfs provides options, results, and error definitions for
// depth-first traversal over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS-family algorithms.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort when the graph is
	// not a DAG.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph is returned by TopologicalSort on undirected input.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit fires when a vertex is discovered (pre-order). Returning an
	// error aborts the traversal.
	OnVisit func(id string) error

	// OnFinish fires when a vertex's subtree is fully explored
	// (post-order). Returning an error aborts the traversal.
	OnFinish func(id string) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with background context, no-op hooks,
// and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string) error { return nil },
		OnFinish:       func(string) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; an error aborts the traversal.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnFinish registers a post-order hook; an error aborts the traversal.
func WithOnFinish(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a DFS traversal.
//
//   - Order: vertices in discovery (pre-order) sequence.
//   - Discovery / Finish: timestamps drawn from one monotonic counter
//     shared by both events, so every timestamp is unique and
//     Discovery[v] < Finish[v] always holds.
//   - Parent: predecessor of each vertex in the DFS tree (absent for roots).
type Result struct {
	Order     []string
	Discovery map[string]int
	Finish    map[string]int
	Parent    map[string]string
}

// ForestResult extends Result over all components of the graph.
// Trees holds the pre-order visit sequence of each component, in the
// order the components were entered; Discovery/Finish/Parent are global.
type ForestResult struct {
	Trees [][]string
	Result
}

// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation, plus the Compute dispatcher that
// selects between Prim and Kruskal.
package mst

import (
	"errors"
	"fmt"

	"github.com/graphen-io/graphen/core"
)

// Sentinel errors shared by Prim, Kruskal, and Compute.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirectedGraph is returned for directed input; spanning trees are
	// defined on undirected graphs.
	ErrDirectedGraph = errors.New("mst: undirected graph required")

	// ErrUnweightedGraph is returned when the graph does not carry weights.
	ErrUnweightedGraph = errors.New("mst: weighted graph required")

	// ErrRootNotFound is returned by Prim when the root ID is absent.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrDisconnected is returned when no spanning tree can cover every
	// vertex (also the convention for the empty graph).
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod is returned by Compute for an unrecognized Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method selects the MST algorithm used by Compute.
type Method string

const (
	// MethodPrim grows the tree from a root using a min-heap of
	// candidate edges.
	MethodPrim Method = "prim"

	// MethodKruskal sorts all edges and merges components with
	// union-find.
	MethodKruskal Method = "kruskal"
)

// Options configures Compute. Use DefaultOptions for the Kruskal default.
type Options struct {
	// Method to dispatch to: MethodPrim or MethodKruskal.
	Method Method

	// Root is the starting vertex for Prim; ignored by Kruskal. When
	// empty, Prim starts from the lexicographically smallest vertex.
	Root string
}

// Option configures Options via functional arguments.
type Option func(*Options)

// WithMethod selects the algorithm to run.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets the Prim starting vertex.
func WithRoot(root string) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// DefaultOptions returns Options selecting Kruskal with no root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute dispatches to Prim or Kruskal according to the options.
// Both backends return the spanning tree as a new undirected weighted
// graph over the same vertex set, plus the total selected weight.
func Compute(g *core.Graph, opts ...Option) (*core.Graph, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		root := o.Root
		if root == "" && g != nil && g.VertexCount() > 0 {
			root = g.Vertices()[0]
		}

		return Prim(g, root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate applies the shared preconditions of both algorithms.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if g.VertexCount() == 0 {
		return ErrDisconnected
	}

	return nil
}

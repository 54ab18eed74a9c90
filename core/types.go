// Package core defines the central Graph type: a mutable, in-memory
// vertex/adjacency store with directed/weighted modes and per-vertex and
// per-edge property records.
//
// Vertices are addressed by string IDs at the API surface, but stored under
// dense integer indices internally: adjacency is a slice of neighbor→weight
// maps indexed by vertex index, so algorithm hot loops never hash strings.
// The index-based read API lives in index.go.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - a mutator referenced a non-existent vertex.
//	ErrEdgeNotFound   - RemoveEdge referenced a non-existent edge.
//	ErrSelfLoop       - attempt to add an edge from a vertex to itself.
//	ErrBadWeight      - non-default weight provided to an unweighted graph.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates a mutator referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a vertex to itself was attempted.
	// Self-loops are rejected: no algorithm in this engine is defined over them.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrBadWeight indicates WithWeight was used on an unweighted graph.
	ErrBadWeight = errors.New("core: weight not allowed on unweighted graph")
)

// DefaultEdgeWeight is stored for every edge added without WithWeight.
const DefaultEdgeWeight = 1.0

// GraphOption configures behavior of a Graph at construction time.
// Directedness and weightedness are immutable after New.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows per-edge weights other than DefaultEdgeWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*edgeSpec)

// edgeSpec accumulates per-edge settings before AddEdge commits them.
type edgeSpec struct {
	weight    float64
	hasWeight bool
	props     map[string]any
}

// WithWeight sets the edge weight. Only valid on weighted graphs;
// on unweighted graphs AddEdge fails with ErrBadWeight.
func WithWeight(w float64) EdgeOption {
	return func(s *edgeSpec) {
		s.weight = w
		s.hasWeight = true
	}
}

// WithEdgeProperties attaches an arbitrary key/value record to the edge.
// For undirected graphs the record is shared by both directions.
func WithEdgeProperties(props map[string]any) EdgeOption {
	return func(s *edgeSpec) { s.props = props }
}

// Graph is the core in-memory graph data structure.
//
// It is exclusively owned by its creator: there is no internal locking,
// and no two goroutines may mutate (or mutate while another reads) one
// instance without external synchronization. Algorithm packages treat a
// Graph as read-only input; only Clone and the spanning-tree builders
// allocate new instances.
type Graph struct {
	directed bool
	weighted bool

	ids   []string       // dense index → vertex ID
	index map[string]int // vertex ID → dense index

	// adj[i][j] = weight of edge i→j. For undirected graphs every edge is
	// mirrored, so adj alone describes the full neighborhood.
	adj []map[int]float64

	// in[i][j] = weight of edge j→i. Maintained only for directed graphs;
	// nil otherwise.
	in []map[int]float64

	// vprops[i] is the property record of vertex i; nil until first write.
	vprops []map[string]any

	// eprops[i][j] is the property record of edge i→j; for undirected
	// graphs eprops[i][j] and eprops[j][i] reference the same map.
	eprops []map[int]map[string]any

	edgeCount int // undirected edges counted once
}

// New creates an empty Graph. By default it is undirected and unweighted;
// every edge then carries DefaultEdgeWeight.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[string]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges may carry weights other than DefaultEdgeWeight.
func (g *Graph) Weighted() bool { return g.weighted }

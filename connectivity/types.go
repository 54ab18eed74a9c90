// Package connectivity defines error definitions shared by the
// articulation-point, bridge, and strongly-connected-component
// analyses.
package connectivity

import "errors"

// Sentinel errors for connectivity analyses.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrDirectedGraph is returned by ArticulationPoints and Bridges,
	// which are defined on undirected graphs.
	ErrDirectedGraph = errors.New("connectivity: undirected graph required")

	// ErrUndirectedGraph is returned by StronglyConnected, which is
	// defined on directed graphs.
	ErrUndirectedGraph = errors.New("connectivity: directed graph required")
)

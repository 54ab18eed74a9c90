// Package centrality defines error definitions for vertex importance
// measures and clustering coefficients.
package centrality

import "errors"

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrVertexNotFound is returned by Clustering for an unknown vertex.
	ErrVertexNotFound = errors.New("centrality: vertex not found")

	// ErrNegativeWeight is returned by the distance-based measures
	// (closeness, betweenness) when an edge weight is negative.
	ErrNegativeWeight = errors.New("centrality: negative edge weight encountered")
)

// Package community defines results and error definitions for
// modularity-based community detection.
package community

import "errors"

// Sentinel errors returned by Detect.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("community: graph is nil")

	// ErrDirectedGraph is returned for directed input; modularity is
	// defined here over undirected graphs.
	ErrDirectedGraph = errors.New("community: undirected graph required")
)

// Result holds one community assignment.
//
//   - Communities maps every vertex ID to its community number; the
//     numbers are dense (0..k-1) and assigned in the order communities
//     first appear over the sorted vertex IDs, so equal graphs yield
//     equal assignments.
//   - Modularity is the final score of the assignment.
type Result struct {
	Communities map[string]int
	Modularity  float64
}

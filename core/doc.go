// Package core provides the mutable in-memory Graph store every algorithm
// package in this module consumes.
//
// What
//
//   - Directed or undirected, weighted or unweighted graphs behind one type.
//   - String vertex IDs at the API surface, dense integer indices inside:
//     adjacency is a slice of neighbor→weight maps, so hot loops index
//     slices instead of hashing strings.
//   - Per-vertex and per-edge property records (arbitrary key/value data);
//     undirected edges share one record between both orientations.
//   - Deep Clone, dense AdjacencyMatrix and nested AdjacencyList exports,
//     and an O(V+E) IsConnected check.
//
// Semantics
//
//   - Adding an edge implicitly adds missing endpoints; the weight defaults
//     to DefaultEdgeWeight (1).
//   - Undirected edges are mirrored both ways with the same weight.
//   - Removing a vertex removes all incident edges and their properties.
//   - Self-loops are rejected (ErrSelfLoop); re-adding an existing edge
//     overwrites weight and properties, so parallel edges cannot exist.
//
// Lookup policy
//
//	Queries (Weight, Neighbors, Degree, ...) never fail: a missing vertex
//	or edge yields the zero result or ok=false. Mutators report missing
//	references as sentinel errors. Absence is never encoded as IEEE +Inf
//	except inside the dense AdjacencyMatrix export, where +Inf off the
//	diagonal is the standard all-pairs convention.
//
// Concurrency
//
//	A Graph is exclusively owned by its creator. There is no internal
//	locking; wrap the instance yourself if goroutines must share it.
package core

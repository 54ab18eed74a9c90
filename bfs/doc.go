// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Explores vertices in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports hooks on enqueue, dequeue, and visit (the latter may
//     abort with an error), neighbor filtering, a MaxDepth limit, and
//     context cancellation.
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - Reachability, level layering, and connected-component discovery.
//   - The traversal primitive reused by flow and connectivity analyses.
//
// Determinism
//
//	Neighbors are enqueued in ascending vertex-ID order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus neighbor sorting
//   - Memory: O(V)
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, context
//	errors on cancellation, and any error returned by an OnVisit hook.
package bfs

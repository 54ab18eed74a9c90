// Package floydwarshall defines results and error definitions for
// all-pairs shortest paths.
package floydwarshall

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by AllPairs and Result methods.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("floydwarshall: graph is nil")

	// ErrNegativeCycle is returned when the closure drives some
	// diagonal distance below zero, which makes "shortest" undefined.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrVertexNotFound is returned by Path when an endpoint is unknown.
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found")

	// ErrNoPath is returned by Path when the destination is unreachable.
	ErrNoPath = errors.New("floydwarshall: no path between vertices")
)

// Result holds the distance closure of one AllPairs run. The dense
// matrices are private; lookups go through Dist (comma-ok) and Path.
type Result struct {
	ids   []string
	index map[string]int
	dist  [][]float64 // +Inf off-diagonal means unreachable
	next  [][]int     // next[i][j]: first hop from i toward j, -1 if none
}

// IDs returns the vertex IDs backing the matrices, in sorted order.
// The returned slice is shared; callers must not mutate it.
func (r *Result) IDs() []string { return r.ids }

// Dist returns the shortest distance from one vertex to another,
// comma-ok. Unknown endpoints and unreachable pairs report ok=false;
// the dense +Inf convention never leaks out.
func (r *Result) Dist(from, to string) (float64, bool) {
	i, okFrom := r.index[from]
	j, okTo := r.index[to]
	if !okFrom || !okTo {
		return 0, false
	}
	if r.next[i][j] < 0 && i != j {
		return 0, false
	}

	return r.dist[i][j], true
}

// Path reconstructs one shortest path from → to by following the
// next-hop matrix. Complexity: O(path length).
func (r *Result) Path(from, to string) ([]string, error) {
	i, okFrom := r.index[from]
	j, okTo := r.index[to]
	if !okFrom {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !okTo {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if i == j {
		return []string{from}, nil
	}
	if r.next[i][j] < 0 {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, from, to)
	}

	path := []string{from}
	for cur := i; cur != j; {
		cur = r.next[cur][j]
		path = append(path, r.ids[cur])
	}

	return path, nil
}

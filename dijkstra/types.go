// Package dijkstra defines options, results, and error definitions for
// single-source shortest paths on non-negatively weighted graphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph is returned when the graph was not created with
	// WithWeighted; shortest paths over unit weights belong to bfs.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrTargetNotFound is returned when WithTarget names an absent vertex.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found")

	// ErrNegativeWeight is returned when any edge carries a negative
	// weight; the edge pre-scan fails fast before relaxation starts.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Option configures ShortestPaths via functional arguments. Invalid
// values (e.g. a negative MaxDistance) are recorded and surfaced as
// ErrOptionViolation when ShortestPaths is invoked.
type Option func(*Options)

// Options holds parameters to customize the search.
type Options struct {
	// Target, if non-empty, lets the search stop as soon as that vertex
	// is finalized instead of settling the whole reachable set.
	Target string

	// MaxDistance caps exploration: vertices whose distance would exceed
	// it are never settled. Defaults to +Inf (no cap).
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no target and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithTarget stops the search once the given vertex is finalized.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxDistance skips vertices farther than limit from the source.
// Negative values are invalid and yield ErrOptionViolation.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative, got %v", ErrOptionViolation, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// Result holds the outcome of one ShortestPaths run.
//
//   - Dist holds the settled distance of every reached vertex; vertices
//     absent from the map are unreachable (no infinity sentinels).
//   - Prev maps each reached vertex (except the source) to its
//     predecessor on a shortest path.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo reconstructs a shortest path from the source to dest.
// Returns an error if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("dijkstra: no path from %q to %q", r.Source, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

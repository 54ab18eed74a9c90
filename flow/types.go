// Package flow defines results and error definitions for maximum-flow
// computation on directed capacity graphs.
package flow

import "errors"

// Sentinel errors returned by MaxFlow.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrUndirectedGraph is returned for undirected input; capacities
	// are directional.
	ErrUndirectedGraph = errors.New("flow: directed graph required")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink ID is absent.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink is returned when source and sink name the same vertex.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrNegativeCapacity is returned when any edge weight is negative;
	// capacities must be non-negative.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")
)

// Result holds the outcome of one MaxFlow run.
//
//   - Value is the total flow pushed from source to sink.
//   - Flows[u][v] is the flow assigned to the original edge u→v; every
//     original edge appears, carrying 0 when unused.
type Result struct {
	Value float64
	Flows map[string]map[string]float64
}

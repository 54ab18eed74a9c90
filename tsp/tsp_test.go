package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphen-io/graphen/core"
	"github.com/graphen-io/graphen/mst"
	"github.com/graphen-io/graphen/tsp"
)

// metricK4 builds a complete metric graph on A,B,C,D: unit ring edges
// plus 1.5-weight diagonals.
func metricK4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("B", "C", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("C", "D", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("D", "A", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(1.5)))
	require.NoError(t, g.AddEdge("B", "D", core.WithWeight(1.5)))

	return g
}

func TestApprox_PreconditionsPropagate(t *testing.T) {
	_, err := tsp.Approx(nil, "A")
	assert.ErrorIs(t, err, mst.ErrGraphNil)

	directed := core.New(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, directed.AddEdge("A", "B", core.WithWeight(1)))
	_, err = tsp.Approx(directed, "A")
	assert.ErrorIs(t, err, mst.ErrDirectedGraph)

	g := metricK4(t)
	_, err = tsp.Approx(g, "ghost")
	assert.ErrorIs(t, err, mst.ErrRootNotFound)
}

func TestApprox_MetricK4(t *testing.T) {
	g := metricK4(t)

	res, err := tsp.Approx(g, "A")
	require.NoError(t, err)
	require.Len(t, res.Tour, 5)
	assert.Equal(t, "A", res.Tour[0])
	assert.Equal(t, "A", res.Tour[4])

	// every vertex appears exactly once between the endpoints
	seen := map[string]int{}
	for _, v := range res.Tour[:4] {
		seen[v]++
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, seen)

	// optimal ring tour costs 4; the approximation stays within 2×
	assert.GreaterOrEqual(t, res.Cost, 4.0)
	assert.LessOrEqual(t, res.Cost, 8.0)
}

func TestApprox_DeterministicTour(t *testing.T) {
	g := metricK4(t)

	first, err := tsp.Approx(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "A"}, first.Tour)
	assert.Equal(t, 4.0, first.Cost)

	again, err := tsp.Approx(g, "A")
	require.NoError(t, err)
	assert.Equal(t, first.Tour, again.Tour)
}

func TestApprox_DifferentStarts(t *testing.T) {
	g := metricK4(t)
	for _, start := range g.Vertices() {
		res, err := tsp.Approx(g, start)
		require.NoError(t, err)
		assert.Equal(t, start, res.Tour[0])
		assert.Equal(t, start, res.Tour[len(res.Tour)-1])
		assert.LessOrEqual(t, res.Cost, 8.0, "start %s", start)
	}
}

func TestApprox_MissingShortcutEdge(t *testing.T) {
	// path A-B-C has no C-A edge to close the cycle
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("B", "C", core.WithWeight(1)))

	_, err := tsp.Approx(g, "A")
	assert.ErrorIs(t, err, tsp.ErrIncompleteTour)
}

func TestApprox_SingleVertex(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddVertex("solo"))

	res, err := tsp.Approx(g, "solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, res.Tour)
	assert.Zero(t, res.Cost)
}

package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphen-io/graphen/centrality"
	"github.com/graphen-io/graphen/core"
)

// pathABC builds the undirected path A - B - C.
func pathABC(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	return g
}

// star builds the undirected star with center A and leaves B, C, D.
func star(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "D"))

	return g
}

func TestNilGraphRejectedEverywhere(t *testing.T) {
	_, err := centrality.Degree(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Closeness(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Betweenness(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Eigenvector(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Clustering(nil, "A")
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.GlobalClustering(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
}

func TestDegree_Path(t *testing.T) {
	g := pathABC(t)

	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, deg["A"], 1e-9)
	assert.InDelta(t, 1.0, deg["B"], 1e-9)
	assert.InDelta(t, 0.5, deg["C"], 1e-9)
}

func TestDegree_SingleVertex(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("solo"))

	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Zero(t, deg["solo"])
}

func TestCloseness_Path(t *testing.T) {
	g := pathABC(t)

	clo, err := centrality.Closeness(g)
	require.NoError(t, err)
	// A: 2 reachable, distances 1+2 → 2/(2·3)
	assert.InDelta(t, 1.0/3.0, clo["A"], 1e-9)
	// B: 2 reachable, distances 1+1 → 2/(2·2)
	assert.InDelta(t, 0.5, clo["B"], 1e-9)
	assert.InDelta(t, 1.0/3.0, clo["C"], 1e-9)
}

func TestCloseness_IsolatedVertexScoresZero(t *testing.T) {
	g := pathABC(t)
	require.NoError(t, g.AddVertex("Z"))

	clo, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.Zero(t, clo["Z"])
}

func TestCloseness_NegativeWeightRejected(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(-1)))

	_, err := centrality.Closeness(g)
	assert.ErrorIs(t, err, centrality.ErrNegativeWeight)
	_, err = centrality.Betweenness(g)
	assert.ErrorIs(t, err, centrality.ErrNegativeWeight)
}

func TestBetweenness_PathMiddleCarriesAll(t *testing.T) {
	g := pathABC(t)

	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	// both ordered pairs (A,C) and (C,A) route through B; norm = 2·1
	assert.InDelta(t, 1.0, btw["B"], 1e-9)
	assert.Zero(t, btw["A"])
	assert.Zero(t, btw["C"])
}

func TestBetweenness_StarCenter(t *testing.T) {
	g := star(t)

	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	// all 6 ordered leaf pairs route through A; norm = 3·2
	assert.InDelta(t, 1.0, btw["A"], 1e-9)
	assert.Zero(t, btw["B"])
}

func TestBetweenness_WeightsRedirectPaths(t *testing.T) {
	// with the direct A-C edge cheap, B carries nothing
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(5)))
	require.NoError(t, g.AddEdge("B", "C", core.WithWeight(5)))
	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(1)))

	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.Zero(t, btw["B"])
}

func TestEigenvector_TriangleUniform(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	eig, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	want := 1 / math.Sqrt(3)
	for _, id := range []string{"A", "B", "C"} {
		assert.InDelta(t, want, eig[id], 1e-4, "vertex %s", id)
	}
}

func TestEigenvector_HubDominates(t *testing.T) {
	// triangle A-B-C with a pendant D on A: A is the best-connected
	// vertex, B and C tie by symmetry, D trails
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))
	require.NoError(t, g.AddEdge("A", "D"))

	eig, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	assert.Greater(t, eig["A"], eig["B"])
	assert.InDelta(t, eig["B"], eig["C"], 1e-6)
	assert.Greater(t, eig["B"], eig["D"])
}

func TestEigenvector_EdgelessAllZero(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	eig, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	assert.Zero(t, eig["A"])
	assert.Zero(t, eig["B"])
}

func TestClustering_Triangle(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	c, err := centrality.Clustering(g, "A")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-9)

	global, err := centrality.GlobalClustering(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, global, 1e-9)
}

func TestClustering_PathHasNone(t *testing.T) {
	g := pathABC(t)

	c, err := centrality.Clustering(g, "B")
	require.NoError(t, err)
	assert.Zero(t, c)

	global, err := centrality.GlobalClustering(g)
	require.NoError(t, err)
	assert.Zero(t, global)
}

func TestClustering_PartialNeighborhood(t *testing.T) {
	g := star(t)
	require.NoError(t, g.AddEdge("B", "C"))

	c, err := centrality.Clustering(g, "A")
	require.NoError(t, err)
	// one of three neighbor pairs is adjacent
	assert.InDelta(t, 1.0/3.0, c, 1e-9)

	c, err = centrality.Clustering(g, "B")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-9)
}

func TestClustering_UnknownVertex(t *testing.T) {
	g := pathABC(t)
	_, err := centrality.Clustering(g, "ghost")
	assert.ErrorIs(t, err, centrality.ErrVertexNotFound)
}

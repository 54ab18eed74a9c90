package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphen-io/graphen/core"
)

func TestAddVertex_Basics(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "re-adding must be a no-op")
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_DefaultWeightAndImplicitVertices(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasVertex("A"), "endpoints are created implicitly")
	assert.True(t, g.HasVertex("B"))
	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, core.DefaultEdgeWeight, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2.5)))

	wAB, okAB := g.Weight("A", "B")
	wBA, okBA := g.Weight("B", "A")
	require.True(t, okAB)
	require.True(t, okBA)
	assert.Equal(t, wAB, wBA, "mirror must carry the same weight")
	assert.Equal(t, g.HasEdge("A", "B"), g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount(), "undirected edges count once")
}

func TestAddEdge_DirectedNoMirror(t *testing.T) {
	g := core.New(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	_, ok := g.Weight("B", "A")
	assert.False(t, ok)
}

func TestAddEdge_Rejections(t *testing.T) {
	g := core.New()
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "B", core.WithWeight(3)), core.ErrBadWeight,
		"explicit weight on unweighted graph")
}

func TestAddEdge_OverwriteMergesDuplicates(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(7)))

	w, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, 7.0, w, "last write wins")
	assert.Equal(t, 1, g.EdgeCount(), "duplicate edge must not inflate the count")
}

func TestEdgeProperties_MirroredRecord(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B",
		core.WithWeight(2),
		core.WithEdgeProperties(map[string]any{"kind": "road"}),
	))

	ab := g.EdgeProperties("A", "B")
	ba := g.EdgeProperties("B", "A")
	require.NotNil(t, ab)
	assert.Equal(t, "road", ab["kind"])
	assert.Equal(t, "road", ba["kind"], "both orientations share one record")

	// prop-less re-add clears the record
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))
	assert.Nil(t, g.EdgeProperties("A", "B"))
	assert.Nil(t, g.EdgeProperties("B", "A"))
}

func TestRemoveEdge_RestoresPreAdditionState(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(4),
		core.WithEdgeProperties(map[string]any{"k": 1})))
	require.NoError(t, g.RemoveEdge("A", "B"))

	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Nil(t, g.EdgeProperties("A", "B"))
	assert.Nil(t, g.EdgeProperties("B", "A"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

func TestRemoveVertex_CascadesIncidentEdges(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("B", "C", core.WithWeight(2)))
	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(3)))

	require.NoError(t, g.RemoveVertex("B"))

	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))
	assert.True(t, g.HasEdge("A", "C"), "unrelated edges survive reindexing")
	w, ok := g.Weight("C", "A")
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 1, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func TestRemoveVertex_DirectedBothDirections(t *testing.T) {
	g := core.New(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("B", "A", core.WithWeight(2)))
	require.NoError(t, g.AddEdge("C", "B", core.WithWeight(3)))
	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(4)))

	require.NoError(t, g.RemoveVertex("B"))

	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "C"))
	assert.Equal(t, []string{"A"}, g.InNeighbors("C"))
}

func TestDegrees(t *testing.T) {
	und := core.New()
	require.NoError(t, und.AddEdge("A", "B"))
	require.NoError(t, und.AddEdge("A", "C"))
	assert.Equal(t, 2, und.Degree("A"))
	assert.Equal(t, 2, und.OutDegree("A"))
	assert.Equal(t, 2, und.InDegree("A"))
	assert.Equal(t, 0, und.Degree("missing"))

	dir := core.New(core.WithDirected(true))
	require.NoError(t, dir.AddEdge("A", "B"))
	require.NoError(t, dir.AddEdge("C", "A"))
	assert.Equal(t, 1, dir.OutDegree("A"))
	assert.Equal(t, 1, dir.InDegree("A"))
	assert.Equal(t, 2, dir.Degree("A"))
}

func TestNeighbors_SortedAndDirectional(t *testing.T) {
	g := core.New(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("D", "A"))

	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"D"}, g.InNeighbors("A"))
	assert.Nil(t, g.Neighbors("missing"), "missing vertex yields nil, not an error")
}

func TestVertexProperties(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.SetVertexProperty("A", "color", "blue"))
	assert.Equal(t, "blue", g.VertexProperties("A")["color"])
	assert.ErrorIs(t, g.SetVertexProperty("Z", "k", 1), core.ErrVertexNotFound)
	assert.Nil(t, g.VertexProperties("Z"))
}

func TestClone_DeepCopy(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2),
		core.WithEdgeProperties(map[string]any{"k": "v"})))
	require.NoError(t, g.SetVertexProperty("A", "p", 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge("B", "C", core.WithWeight(5)))
	require.NoError(t, c.RemoveEdge("A", "B"))
	c.VertexProperties("A")["p"] = 2

	assert.True(t, g.HasEdge("A", "B"), "original keeps its edge")
	assert.False(t, g.HasVertex("C"), "original does not gain clone's vertex")
	assert.Equal(t, 1, g.VertexProperties("A")["p"], "vertex props are copied")
	assert.Equal(t, "v", g.EdgeProperties("A", "B")["k"])
}

func TestAdjacencyMatrix_Conventions(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("B", "A", core.WithWeight(3)))
	require.NoError(t, g.AddVertex("C"))

	ids, mat := g.AdjacencyMatrix()
	require.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, 3.0, mat[0][1])
	assert.Equal(t, 3.0, mat[1][0], "undirected mirror in the matrix")
	assert.True(t, math.IsInf(mat[0][2], 1), "missing edge is +Inf in the dense form")
	assert.Equal(t, 0.0, mat[2][2], "diagonal is zero")
}

func TestAdjacencyList_DeepCopy(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))

	list := g.AdjacencyList()
	assert.Equal(t, 2.0, list["A"]["B"])
	list["A"]["B"] = 99
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 2.0, w, "mutating the export must not touch the graph")
}

func TestEdges_UndirectedReportedOnce(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("B", "A", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("B", "C", core.WithWeight(2)))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 2}, edges[1])
}

func TestIsConnected(t *testing.T) {
	empty := core.New()
	assert.True(t, empty.IsConnected(), "empty graph is trivially connected")

	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	assert.True(t, g.IsConnected())

	require.NoError(t, g.AddVertex("D"))
	assert.False(t, g.IsConnected())

	// weak connectivity for directed graphs
	d := core.New(core.WithDirected(true))
	require.NoError(t, d.AddEdge("A", "B"))
	require.NoError(t, d.AddEdge("C", "B"))
	assert.True(t, d.IsConnected())
}

func TestIndexAPI(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))
	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(3)))

	a, ok := g.IndexOf("A")
	require.True(t, ok)
	assert.Equal(t, "A", g.IDOf(a))
	assert.Equal(t, "", g.IDOf(99))

	nbrs := g.NeighborIndexes(a)
	require.Len(t, nbrs, 2)
	for _, j := range nbrs {
		w, ok := g.WeightAt(a, j)
		require.True(t, ok)
		assert.Greater(t, w, 0.0)
	}

	sum := 0.0
	g.ForEachNeighbor(a, func(_ int, w float64) { sum += w })
	assert.Equal(t, 5.0, sum)
	assert.Equal(t, 3, g.Order())
}

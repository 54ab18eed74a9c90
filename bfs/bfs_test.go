package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphen-io/graphen/bfs"
	"github.com/graphen-io/graphen/core"
)

// buildChain creates an undirected chain N0–N1–…–N(n-1).
func buildChain(n int) *core.Graph {
	g := core.New()
	for i := 0; i < n-1; i++ {
		g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
	}

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	res, err := bfs.BFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartNotFound(t *testing.T) {
	g := core.New()
	res, err := bfs.BFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_NegativeMaxDepth(t *testing.T) {
	g := buildChain(3)
	_, err := bfs.BFS(g, "N0", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	// A───B───D
	// │
	// C
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "D"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["C"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent, "start has no parent")
}

func TestBFS_DirectedFollowsEdgeDirection(t *testing.T) {
	g := core.New(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order, "incoming edges are not traversed")
}

func TestBFS_Disconnected(t *testing.T) {
	g := buildChain(3)
	require.NoError(t, g.AddVertex("M"))

	res, err := bfs.BFS(g, "N0")
	require.NoError(t, err)
	assert.NotContains(t, res.Order, "M")
	_, reached := res.Depth["M"]
	assert.False(t, reached)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := buildChain(10)
	res, err := bfs.BFS(g, "N0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_HooksAndVisitError(t *testing.T) {
	g := buildChain(5)
	var enq []string
	res, err := bfs.BFS(g, "N0",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "N2" {
				return errors.New("halt")
			}

			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit error at \"N2\"")
	assert.Contains(t, enq, "N0")
}

func TestBFS_HookOrdering(t *testing.T) {
	// A───B───C: every vertex is enqueued, later dequeued, then visited
	g := buildChain(3)
	var events []string
	log := func(kind string) func(id string, _ int) {
		return func(id string, _ int) { events = append(events, kind+":"+id) }
	}

	_, err := bfs.BFS(g, "N0",
		bfs.WithOnEnqueue(log("enq")),
		bfs.WithOnDequeue(log("deq")),
		bfs.WithOnVisit(func(id string, _ int) error {
			events = append(events, "visit:"+id)

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enq:N0",
		"deq:N0", "visit:N0", "enq:N1",
		"deq:N1", "visit:N1", "enq:N2",
		"deq:N2", "visit:N2",
	}, events)
}

func TestBFS_Cancellation(t *testing.T) {
	g := buildChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.BFS(g, "N0", bfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_PathTo(t *testing.T) {
	g := core.New()
	// two routes A→K: 4 hops via B,C,D and 3 hops via E,F
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))
	require.NoError(t, g.AddEdge("D", "K"))
	require.NoError(t, g.AddEdge("A", "E"))
	require.NoError(t, g.AddEdge("E", "F"))
	require.NoError(t, g.AddEdge("F", "K"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	path, err := res.PathTo("K")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "F", "K"}, path)

	_, err = res.PathTo("ZZ")
	assert.Error(t, err)
}

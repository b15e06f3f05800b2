package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeCountsEveryInsertion(t *testing.T) {
	g := New(3)

	g.AddEdge(0, 1, 2.5)
	g.AddEdge(1, 2, 1.0)
	assert.Equal(t, 2, g.EdgeCount())

	g.AddBidirectionalEdge(0, 2, 4.0)
	assert.Equal(t, 4, g.EdgeCount())

	require.Len(t, g.Adjacency(0), 2)
	assert.Equal(t, Edge{To: 1, Weight: 2.5}, g.Adjacency(0)[0])
	assert.Equal(t, Edge{To: 2, Weight: 4.0}, g.Adjacency(0)[1])
}

func TestAddEdgeOutOfRangeIsSilentNoop(t *testing.T) {
	g := New(2)

	g.AddEdge(-1, 1, 1.0)
	g.AddEdge(0, 2, 1.0)
	g.AddEdge(5, 7, 1.0)

	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Adjacency(0))
}

func TestAddBidirectionalEdgeHalfValid(t *testing.T) {
	g := New(2)

	// Both directions validate against the same endpoint pair, so an
	// out-of-range endpoint drops both halves.
	g.AddBidirectionalEdge(0, 9, 1.0)
	assert.Equal(t, 0, g.EdgeCount())

	g.AddBidirectionalEdge(0, 1, 1.0)
	assert.Equal(t, 2, g.EdgeCount())
	require.Len(t, g.Adjacency(1), 1)
	assert.Equal(t, 0, g.Adjacency(1)[0].To)
}

func TestHeuristic(t *testing.T) {
	g := New(2)
	g.SetCoordinates(0, 0, 0)
	g.SetCoordinates(1, 3, 4)

	assert.InDelta(t, 5.0, g.Heuristic(0, 1), 1e-12)
	assert.InDelta(t, 5.0, g.Heuristic(1, 0), 1e-12)
	assert.Zero(t, g.Heuristic(0, 7))
	assert.Zero(t, g.Heuristic(-1, 0))
}

func TestResizeDropsEdges(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 1, 1.0)

	g.Resize(4)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Adjacency(0))
}

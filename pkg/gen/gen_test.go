package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distributed-dijkstra/pkg/graph"
)

func reachableFrom(g *graph.Graph, start int) int {
	seen := make([]bool, g.NodeCount())
	queue := []int{start}
	seen[start] = true
	count := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		count++
		for _, e := range g.Adjacency(u) {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	return count
}

func TestRandomConnectedIsConnected(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := RandomConnected(rng, 50, 200, 1, 100)
	require.NoError(t, err)

	assert.Equal(t, 50, g.NodeCount())
	assert.Equal(t, 50, reachableFrom(g, 0))
	assert.GreaterOrEqual(t, g.EdgeCount(), 2*(50-1))
}

func TestRandomConnectedWeightBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := RandomConnected(rng, 20, 60, 2.5, 3.5)
	require.NoError(t, err)

	for id := 0; id < g.NodeCount(); id++ {
		for _, e := range g.Adjacency(id) {
			assert.GreaterOrEqual(t, e.Weight, 2.5)
			assert.Less(t, e.Weight, 3.5)
		}
	}
}

func TestRandomConnectedValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := RandomConnected(rng, 0, 10, 1, 2)
	assert.Error(t, err)

	_, err = RandomConnected(rng, 10, 5, 1, 2)
	assert.Error(t, err)

	_, err = RandomConnected(rng, 10, 20, 5, 5)
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	g, err := Grid(3, 4, 1.5)
	require.NoError(t, err)

	assert.Equal(t, 12, g.NodeCount())
	// Horizontal: 3*3, vertical: 2*4, both directions.
	assert.Equal(t, 2*(3*3+2*4), g.EdgeCount())

	x, y := g.Coordinates(1*4 + 2)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 10.0, y)

	for id := 0; id < g.NodeCount(); id++ {
		for _, e := range g.Adjacency(id) {
			assert.Equal(t, 1.5, e.Weight)
		}
	}
}

func TestGridValidation(t *testing.T) {
	_, err := Grid(0, 3, 1)
	assert.Error(t, err)
	_, err = Grid(3, -1, 1)
	assert.Error(t, err)
}

func TestSingleNodeGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := RandomConnected(rng, 1, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

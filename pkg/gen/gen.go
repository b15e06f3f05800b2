// Package gen builds synthetic test graphs: random connected graphs with
// a spanning-tree backbone, and 4-connected grids.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/distributed-dijkstra/pkg/graph"
)

// RandomConnected builds an undirected connected graph with numNodes
// nodes and approximately numEdges directed edge records. Node i links to
// a random earlier node, which guarantees connectivity, then extra random
// bidirectional edges are added until the requested count or an attempt
// cap runs out. Coordinates are uniform in [0, 1000) for the A* heuristic.
func RandomConnected(rng *rand.Rand, numNodes, numEdges int, minWeight, maxWeight float64) (*graph.Graph, error) {
	if numNodes <= 0 {
		return nil, fmt.Errorf("node count must be positive, got %d", numNodes)
	}
	if numEdges < numNodes-1 {
		return nil, fmt.Errorf("need at least %d edges for %d nodes to stay connected, got %d",
			numNodes-1, numNodes, numEdges)
	}
	if minWeight >= maxWeight {
		return nil, fmt.Errorf("weight bounds inverted: min %g >= max %g", minWeight, maxWeight)
	}

	g := graph.New(numNodes)

	for i := 0; i < numNodes; i++ {
		g.SetCoordinates(i, rng.Float64()*1000, rng.Float64()*1000)
	}

	weight := func() float64 {
		return minWeight + rng.Float64()*(maxWeight-minWeight)
	}

	// Spanning-tree backbone.
	for i := 1; i < numNodes; i++ {
		g.AddBidirectionalEdge(rng.Intn(i), i, weight())
	}

	added := 2 * (numNodes - 1)
	maxAttempts := numEdges * 10
	for attempts := 0; added < numEdges && attempts < maxAttempts; attempts++ {
		from := rng.Intn(numNodes)
		to := rng.Intn(numNodes)
		if from == to {
			continue
		}
		g.AddBidirectionalEdge(from, to, weight())
		added += 2
	}

	return g, nil
}

// Grid builds a rows x cols 4-connected grid with uniform edge weight.
// Node r*cols+c sits at coordinates (c*10, r*10).
func Grid(rows, cols int, edgeWeight float64) (*graph.Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", rows, cols)
	}

	g := graph.New(rows * cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.SetCoordinates(r*cols+c, float64(c)*10, float64(r)*10)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c < cols-1 {
				g.AddBidirectionalEdge(id, id+1, edgeWeight)
			}
			if r < rows-1 {
				g.AddBidirectionalEdge(id, id+cols, edgeWeight)
			}
		}
	}

	return g, nil
}

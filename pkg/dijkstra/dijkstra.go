// Package dijkstra is the single-machine priority-queue baseline used to
// validate the distributed engine's distances.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/distributed-dijkstra/pkg/graph"
)

// PathResult reports one shortest-path query.
type PathResult struct {
	Found    bool
	Distance float64
	// Path lists node ids from source to destination, empty when no path
	// exists.
	Path    []int
	Elapsed time.Duration
}

// ShortestPath runs standard Dijkstra from source to destination.
func ShortestPath(g *graph.Graph, source, destination int) (PathResult, error) {
	return search(g, source, destination, nil)
}

// ShortestPathAStar orders the search by f = g + h with the Euclidean
// heuristic. With admissible coordinates it returns the same distance as
// ShortestPath while visiting fewer nodes.
func ShortestPathAStar(g *graph.Graph, source, destination int) (PathResult, error) {
	return search(g, source, destination, func(node int) float64 {
		return g.Heuristic(node, destination)
	})
}

func search(g *graph.Graph, source, destination int, heuristic func(int) float64) (PathResult, error) {
	n := g.NodeCount()
	if source < 0 || source >= n {
		return PathResult{}, fmt.Errorf("source node %d outside graph of %d nodes", source, n)
	}
	if destination < 0 || destination >= n {
		return PathResult{}, fmt.Errorf("destination node %d outside graph of %d nodes", destination, n)
	}

	start := time.Now()

	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[source] = 0

	pq := &minHeap{}
	heap.Init(pq)
	fScore := 0.0
	if heuristic != nil {
		fScore = heuristic(source)
	}
	heap.Push(pq, pqItem{node: source, fScore: fScore})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		u := current.node

		if visited[u] {
			continue
		}
		visited[u] = true

		if u == destination {
			break
		}

		for _, e := range g.Adjacency(u) {
			if next := dist[u] + e.Weight; next < dist[e.To] {
				dist[e.To] = next
				prev[e.To] = u
				f := next
				if heuristic != nil {
					f += heuristic(e.To)
				}
				heap.Push(pq, pqItem{node: e.To, fScore: f})
			}
		}
	}

	result := PathResult{Distance: dist[destination], Elapsed: time.Since(start)}
	if !math.IsInf(dist[destination], 1) {
		result.Found = true
		result.Path = rebuildPath(prev, destination)
	}
	return result, nil
}

func rebuildPath(prev []int, destination int) []int {
	var reversed []int
	for at := destination; at != -1; at = prev[at] {
		reversed = append(reversed, at)
	}
	path := make([]int, len(reversed))
	for i, node := range reversed {
		path[len(reversed)-1-i] = node
	}
	return path
}

type pqItem struct {
	node   int
	fScore float64
}

type minHeap []pqItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].fScore < h[j].fScore }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

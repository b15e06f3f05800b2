package graph

import "math"

// Edge is a weighted directed connection to another node.
type Edge struct {
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Node is a vertex with optional coordinates used for heuristic estimates.
type Node struct {
	ID int
	X  float64
	Y  float64
}

// Graph is a dense adjacency-list graph. Node ids run 0..NodeCount()-1.
type Graph struct {
	nodes     []Node
	adjacency [][]Edge
	edgeCount int
}

func New(numNodes int) *Graph {
	g := &Graph{}
	g.Resize(numNodes)
	return g
}

// Resize rebuilds the node set, dropping all edges and coordinates.
func (g *Graph) Resize(n int) {
	g.nodes = make([]Node, n)
	g.adjacency = make([][]Edge, n)
	g.edgeCount = 0
	for i := range g.nodes {
		g.nodes[i].ID = i
	}
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount is the number of directed edge records, counting both halves
// of a bidirectional add.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

func (g *Graph) SetCoordinates(id int, x, y float64) {
	if id < 0 || id >= len(g.nodes) {
		return
	}
	g.nodes[id].X = x
	g.nodes[id].Y = y
}

func (g *Graph) Coordinates(id int) (x, y float64) {
	if id < 0 || id >= len(g.nodes) {
		return 0, 0
	}
	return g.nodes[id].X, g.nodes[id].Y
}

// AddEdge inserts a directed edge. Edges with an out-of-range endpoint are
// dropped without signaling the caller: loaders and generators feed this
// method raw records, and slightly malformed input degrades to a smaller
// graph instead of failing the run.
func (g *Graph) AddEdge(from, to int, weight float64) {
	if from < 0 || from >= len(g.nodes) || to < 0 || to >= len(g.nodes) {
		return
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.edgeCount++
}

// AddBidirectionalEdge inserts both directions. Each direction is validated
// independently, so a request with one out-of-range endpoint still inserts
// nothing while a fully valid request inserts two edge records.
func (g *Graph) AddBidirectionalEdge(from, to int, weight float64) {
	g.AddEdge(from, to, weight)
	g.AddEdge(to, from, weight)
}

// Adjacency returns the outgoing edges of a node in insertion order.
func (g *Graph) Adjacency(id int) []Edge {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}
	return g.adjacency[id]
}

// Heuristic is the Euclidean distance between two nodes' coordinates,
// an admissible lower bound for the A* baseline. Out-of-range ids yield 0.
func (g *Graph) Heuristic(from, to int) float64 {
	if from < 0 || from >= len(g.nodes) || to < 0 || to >= len(g.nodes) {
		return 0
	}
	dx := g.nodes[from].X - g.nodes[to].X
	dy := g.nodes[from].Y - g.nodes[to].Y
	return math.Sqrt(dx*dx + dy*dy)
}

package comm

import (
	"fmt"

	"github.com/distributed-dijkstra/pkg/graph"
)

// Every collective is a two-phase rendezvous: ranks contribute under the
// group lock and meet at the enter phaser, read the combined result, then
// meet at the exit phaser whose last arriver clears the shared slot for
// the next collective. BSP lockstep guarantees all ranks are always in
// the same collective, so one set of slots suffices.

// Barrier blocks until every rank in the group has called it.
func (c *Communicator) Barrier() {
	c.group.enter.await(nil)
	c.group.exit.await(nil)
}

// AllReduceFloat64s combines the ranks' equally sized slices elementwise
// and returns the identical combined slice on every rank. The local slice
// is not modified.
func (c *Communicator) AllReduceFloat64s(local []float64, op ReduceOp) []float64 {
	g := c.group

	g.mu.Lock()
	if g.floatAcc == nil {
		g.floatAcc = append([]float64(nil), local...)
	} else {
		if len(g.floatAcc) != len(local) {
			g.mu.Unlock()
			panic(fmt.Sprintf("comm: all-reduce length mismatch: %d vs %d", len(g.floatAcc), len(local)))
		}
		for i, v := range local {
			g.floatAcc[i] = combineFloat(g.floatAcc[i], v, op)
		}
	}
	g.mu.Unlock()

	g.enter.await(nil)
	result := append([]float64(nil), g.floatAcc...)
	g.exit.await(func() { g.floatAcc = nil })
	return result
}

// AllReduceInt combines one integer per rank; every rank gets the result.
func (c *Communicator) AllReduceInt(local int, op ReduceOp) int {
	g := c.group

	g.mu.Lock()
	if !g.intSet {
		g.intAcc = local
		g.intSet = true
	} else {
		g.intAcc = combineInt(g.intAcc, local, op)
	}
	g.mu.Unlock()

	g.enter.await(nil)
	result := g.intAcc
	g.exit.await(func() { g.intSet = false })
	return result
}

// ReduceInt combines one integer per rank and delivers the result to root
// only; every other rank receives 0.
func (c *Communicator) ReduceInt(local int, op ReduceOp, root int) int {
	combined := c.AllReduceInt(local, op)
	if c.rank != root {
		return 0
	}
	return combined
}

// BroadcastFloat64s copies root's slice to every rank.
func (c *Communicator) BroadcastFloat64s(local []float64, root int) []float64 {
	g := c.group

	if c.rank == root {
		g.mu.Lock()
		g.bcastFloats = local
		g.mu.Unlock()
	}

	g.enter.await(nil)
	result := append([]float64(nil), g.bcastFloats...)
	g.exit.await(func() { g.bcastFloats = nil })
	return result
}

// BroadcastInt copies root's value to every rank.
func (c *Communicator) BroadcastInt(v int, root int) int {
	g := c.group

	if c.rank == root {
		g.mu.Lock()
		g.bcastInt = v
		g.mu.Unlock()
	}

	g.enter.await(nil)
	result := g.bcastInt
	g.exit.await(func() { g.bcastInt = 0 })
	return result
}

// GatherVariable collects every rank's slice, of possibly differing
// length, on root concatenated in rank order. Non-root ranks receive nil.
func (c *Communicator) GatherVariable(local []float64, root int) []float64 {
	g := c.group

	g.mu.Lock()
	g.gatherParts[c.rank] = local
	g.mu.Unlock()

	g.enter.await(nil)

	var result []float64
	if c.rank == root {
		total := 0
		for _, part := range g.gatherParts {
			total += len(part)
		}
		result = make([]float64, 0, total)
		for _, part := range g.gatherParts {
			result = append(result, part...)
		}
	}

	g.exit.await(func() {
		for i := range g.gatherParts {
			g.gatherParts[i] = nil
		}
	})
	return result
}

type graphPayload struct {
	nodeCount int
	from      []int
	to        []int
	weights   []float64
	coords    [][2]float64
}

// BroadcastGraph replicates root's graph onto every other rank's graph
// value, edges and coordinates included. Root's graph is left untouched.
func (c *Communicator) BroadcastGraph(target *graph.Graph, root int) {
	g := c.group

	if c.rank == root {
		payload := &graphPayload{nodeCount: target.NodeCount()}
		for id := 0; id < target.NodeCount(); id++ {
			x, y := target.Coordinates(id)
			payload.coords = append(payload.coords, [2]float64{x, y})
			for _, e := range target.Adjacency(id) {
				payload.from = append(payload.from, id)
				payload.to = append(payload.to, e.To)
				payload.weights = append(payload.weights, e.Weight)
			}
		}
		g.mu.Lock()
		g.bcastGraph = payload
		g.mu.Unlock()
	}

	g.enter.await(nil)

	if c.rank != root {
		payload := g.bcastGraph
		target.Resize(payload.nodeCount)
		for id, xy := range payload.coords {
			target.SetCoordinates(id, xy[0], xy[1])
		}
		for i := range payload.from {
			target.AddEdge(payload.from[i], payload.to[i], payload.weights[i])
		}
	}

	g.exit.await(func() { g.bcastGraph = nil })
}

func combineFloat(a, b float64, op ReduceOp) float64 {
	switch op {
	case Min:
		if b < a {
			return b
		}
		return a
	case Max:
		if b > a {
			return b
		}
		return a
	default:
		return a + b
	}
}

func combineInt(a, b int, op ReduceOp) int {
	switch op {
	case Min:
		if b < a {
			return b
		}
		return a
	case Max:
		if b > a {
			return b
		}
		return a
	default:
		return a + b
	}
}

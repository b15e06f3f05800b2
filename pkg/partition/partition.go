// Package partition assigns graph nodes to the process ranks responsible
// for relaxing their outgoing edges. Both strategies cover the node-id
// range exactly once across all ranks.
package partition

import "github.com/distributed-dijkstra/pkg/graph"

// Strategy selects how node ids map to ranks.
type Strategy int

const (
	Contiguous Strategy = iota
	RoundRobin
)

func (s Strategy) String() string {
	switch s {
	case Contiguous:
		return "contiguous"
	case RoundRobin:
		return "round-robin"
	default:
		return "unknown"
	}
}

// ContiguousPartition gives rank a range of consecutive ids. Sizes differ
// by at most one: the first nodeCount mod totalRanks ranks own one extra
// node, and rank 0 owns the lowest ids.
func ContiguousPartition(nodeCount, rank, totalRanks int) []int {
	perRank := nodeCount / totalRanks
	remainder := nodeCount % totalRanks

	start := rank*perRank + min(rank, remainder)
	end := start + perRank
	if rank < remainder {
		end++
	}

	nodes := make([]int, 0, end-start)
	for id := start; id < end; id++ {
		nodes = append(nodes, id)
	}
	return nodes
}

// RoundRobinPartition gives rank every id congruent to rank modulo totalRanks.
func RoundRobinPartition(nodeCount, rank, totalRanks int) []int {
	nodes := make([]int, 0, (nodeCount+totalRanks-1-rank)/totalRanks)
	for id := rank; id < nodeCount; id += totalRanks {
		nodes = append(nodes, id)
	}
	return nodes
}

// Nodes returns the partition for rank under the given strategy.
func Nodes(s Strategy, nodeCount, rank, totalRanks int) []int {
	if s == Contiguous {
		return ContiguousPartition(nodeCount, rank, totalRanks)
	}
	return RoundRobinPartition(nodeCount, rank, totalRanks)
}

// OwnerOf is the inverse of the partition functions: it returns the rank
// whose partition contains id under the given strategy.
func OwnerOf(s Strategy, id, nodeCount, totalRanks int) int {
	if s == RoundRobin {
		return id % totalRanks
	}

	perRank := nodeCount / totalRanks
	remainder := nodeCount % totalRanks

	accumulated := 0
	for rank := 0; rank < totalRanks; rank++ {
		size := perRank
		if rank < remainder {
			size++
		}
		if id < accumulated+size {
			return rank
		}
		accumulated += size
	}
	return totalRanks - 1
}

// BoundaryNodes returns the nodes of myPartition with at least one outgoing
// edge leaving the partition. The relaxation engine does not exploit this
// yet; it exists for locality-aware scheduling.
func BoundaryNodes(g *graph.Graph, myPartition []int) map[int]struct{} {
	owned := make(map[int]struct{}, len(myPartition))
	for _, id := range myPartition {
		owned[id] = struct{}{}
	}

	boundary := make(map[int]struct{})
	for _, id := range myPartition {
		for _, e := range g.Adjacency(id) {
			if _, ok := owned[e.To]; !ok {
				boundary[id] = struct{}{}
				break
			}
		}
	}
	return boundary
}

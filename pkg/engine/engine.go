// Package engine runs the bulk-synchronous relaxation loop: every rank
// relaxes the outgoing edges of the nodes it owns, the group merges the
// distance vectors with an elementwise minimum, and the loop stops when
// no rank changed anything in a round.
package engine

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/distributed-dijkstra/pkg/comm"
	"github.com/distributed-dijkstra/pkg/graph"
	"github.com/distributed-dijkstra/pkg/partition"
)

// Options tunes one distributed run.
type Options struct {
	// Strategy picks the node-to-rank assignment. Round-robin by default.
	Strategy partition.Strategy
	// MaxRounds caps the loop. Zero means the node count: with nonnegative
	// weights no shortest path needs more than N-1 relaxation rounds, so N
	// rounds always suffice. Any override must scale with graph size.
	MaxRounds int
	Logger    *zap.Logger
}

// Stats counts work done by one rank, plus group totals filled in on
// rank 0 during finalization.
type Stats struct {
	Rounds          int
	EdgesRelaxed    int
	DistanceUpdates int

	TotalRounds          int
	TotalEdgesRelaxed    int
	TotalDistanceUpdates int

	Elapsed time.Duration
}

// Result of one rank's participation. After the final merge all ranks
// hold identical Distances.
type Result struct {
	Distances DistanceVector
	Stats     Stats
}

// Run executes the relaxation protocol on the calling rank. Every rank of
// the group must call Run with the same graph and source; a rank that
// fails validation returns before touching any collective, and since all
// ranks validate the same inputs the whole group fails together.
func Run(c *comm.Communicator, g *graph.Graph, source int, opts Options) (Result, error) {
	if source < 0 || source >= g.NodeCount() {
		return Result{}, fmt.Errorf("source node %d outside graph of %d nodes", source, g.NodeCount())
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = g.NodeCount()
	}

	owned := partition.Nodes(opts.Strategy, g.NodeCount(), c.Rank(), c.Size())

	s := &solver{
		c:         c,
		g:         g,
		owned:     owned,
		dist:      NewDistanceVector(g.NodeCount(), -1),
		maxRounds: maxRounds,
		log:       logger.With(zap.Int("rank", c.Rank())),
	}

	// Only the owner of the source seeds it; everyone else starts all-Inf
	// and picks the 0 up from the first merge.
	if partition.OwnerOf(opts.Strategy, source, g.NodeCount(), c.Size()) == c.Rank() {
		s.dist[source] = 0
	}

	c.Barrier()
	start := time.Now()

	s.preSync()
	s.iterate()

	s.stats.Elapsed = time.Since(start)
	s.finalize()

	return Result{Distances: s.dist, Stats: s.stats}, nil
}

type solver struct {
	c         *comm.Communicator
	g         *graph.Graph
	owned     []int
	dist      DistanceVector
	maxRounds int
	log       *zap.Logger
	stats     Stats
}

// preSync establishes a consistent baseline: whichever rank seeded the
// source, after this merge every rank agrees on the full vector.
func (s *solver) preSync() {
	merged := s.c.AllReduceFloat64s(s.dist, comm.Min)
	copy(s.dist, merged)
}

// iterate runs rounds until a fixed point or the round bound. On an
// already-converged vector it performs zero updates and exits after the
// first round's convergence check.
func (s *solver) iterate() {
	for round := 0; round < s.maxRounds; round++ {
		s.stats.Rounds++

		changed := s.relaxOwned()

		merged := s.c.AllReduceFloat64s(s.dist, comm.Min)
		copy(s.dist, merged)

		flag := 0
		if changed {
			flag = 1
		}
		if s.c.AllReduceInt(flag, comm.Max) == 0 {
			s.log.Debug("converged", zap.Int("round", round+1))
			return
		}
	}
	s.log.Debug("round bound reached", zap.Int("rounds", s.stats.Rounds))
}

// relaxOwned relaxes every outgoing edge of this rank's finite-distance
// nodes, lowering distances locally.
func (s *solver) relaxOwned() bool {
	changed := false
	for _, u := range s.owned {
		if math.IsInf(s.dist[u], 1) {
			continue
		}
		for _, e := range s.g.Adjacency(u) {
			s.stats.EdgesRelaxed++
			if next := s.dist[u] + e.Weight; next < s.dist[e.To] {
				s.dist[e.To] = next
				s.stats.DistanceUpdates++
				changed = true
			}
		}
	}
	return changed
}

// finalize reduces the work counters to rank 0 for reporting.
func (s *solver) finalize() {
	s.stats.TotalEdgesRelaxed = s.c.ReduceInt(s.stats.EdgesRelaxed, comm.Sum, 0)
	s.stats.TotalDistanceUpdates = s.c.ReduceInt(s.stats.DistanceUpdates, comm.Sum, 0)
	s.stats.TotalRounds = s.c.ReduceInt(s.stats.Rounds, comm.Max, 0)
}

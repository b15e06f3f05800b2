package comm

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distributed-dijkstra/pkg/graph"
)

func TestBarrierRendezvous(t *testing.T) {
	const size = 4
	var arrived int64

	err := Run(size, func(c *Communicator) error {
		atomic.AddInt64(&arrived, 1)
		c.Barrier()
		if got := atomic.LoadInt64(&arrived); got != size {
			t.Errorf("rank %d passed barrier with %d arrivals", c.Rank(), got)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestAllReduceFloat64s(t *testing.T) {
	const size = 3

	err := Run(size, func(c *Communicator) error {
		local := []float64{float64(c.Rank()), float64(-c.Rank()), 1}

		minOut := c.AllReduceFloat64s(local, Min)
		assert.Equal(t, []float64{0, -2, 1}, minOut)

		maxOut := c.AllReduceFloat64s(local, Max)
		assert.Equal(t, []float64{2, 0, 1}, maxOut)

		sumOut := c.AllReduceFloat64s(local, Sum)
		assert.Equal(t, []float64{3, -3, 3}, sumOut)
		return nil
	})
	require.NoError(t, err)
}

func TestAllReduceInt(t *testing.T) {
	const size = 4

	err := Run(size, func(c *Communicator) error {
		assert.Equal(t, 0, c.AllReduceInt(c.Rank(), Min))
		assert.Equal(t, 3, c.AllReduceInt(c.Rank(), Max))
		assert.Equal(t, 6, c.AllReduceInt(c.Rank(), Sum))
		return nil
	})
	require.NoError(t, err)
}

func TestReduceIntRootOnly(t *testing.T) {
	err := Run(3, func(c *Communicator) error {
		got := c.ReduceInt(c.Rank()+1, Sum, 1)
		if c.Rank() == 1 {
			assert.Equal(t, 6, got)
		} else {
			assert.Zero(t, got)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestBroadcast(t *testing.T) {
	err := Run(3, func(c *Communicator) error {
		var local []float64
		if c.Rank() == 2 {
			local = []float64{1, 2, 3}
		}
		assert.Equal(t, []float64{1, 2, 3}, c.BroadcastFloat64s(local, 2))

		v := 0
		if c.Rank() == 0 {
			v = 42
		}
		assert.Equal(t, 42, c.BroadcastInt(v, 0))
		return nil
	})
	require.NoError(t, err)
}

func TestGatherVariable(t *testing.T) {
	err := Run(3, func(c *Communicator) error {
		// Rank r contributes r copies of r.
		local := make([]float64, c.Rank())
		for i := range local {
			local[i] = float64(c.Rank())
		}

		got := c.GatherVariable(local, 0)
		if c.Rank() == 0 {
			assert.Equal(t, []float64{1, 2, 2}, got)
		} else {
			assert.Nil(t, got)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestBroadcastGraph(t *testing.T) {
	err := Run(3, func(c *Communicator) error {
		g := graph.New(0)
		if c.Rank() == 0 {
			g.Resize(3)
			g.SetCoordinates(1, 5, 6)
			g.AddBidirectionalEdge(0, 1, 1.5)
			g.AddEdge(1, 2, 2)
		}

		c.BroadcastGraph(g, 0)

		assert.Equal(t, 3, g.NodeCount())
		assert.Equal(t, 3, g.EdgeCount())
		x, y := g.Coordinates(1)
		assert.Equal(t, 5.0, x)
		assert.Equal(t, 6.0, y)
		require.Len(t, g.Adjacency(1), 2)
		assert.Equal(t, graph.Edge{To: 0, Weight: 1.5}, g.Adjacency(1)[0])
		assert.Equal(t, graph.Edge{To: 2, Weight: 2}, g.Adjacency(1)[1])
		return nil
	})
	require.NoError(t, err)
}

func TestDistanceUpdatePointToPoint(t *testing.T) {
	err := Run(2, func(c *Communicator) error {
		if c.Rank() == 0 {
			require.NoError(t, c.SendDistanceUpdate(1, 7, 3.5))
		}
		c.Barrier()

		if c.Rank() == 1 {
			update, ok := c.PollDistanceUpdate()
			require.True(t, ok)
			assert.Equal(t, DistanceUpdate{Node: 7, Distance: 3.5, From: 0}, update)

			_, ok = c.PollDistanceUpdate()
			assert.False(t, ok)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestPartitionAssignmentPointToPoint(t *testing.T) {
	err := Run(2, func(c *Communicator) error {
		if c.Rank() == 0 {
			require.NoError(t, c.SendPartition(1, []int{1, 3, 5}))
			return nil
		}
		assert.Equal(t, []int{1, 3, 5}, c.RecvPartition())
		return nil
	})
	require.NoError(t, err)
}

func TestWorkStealReservedSurface(t *testing.T) {
	err := Run(2, func(c *Communicator) error {
		if c.Rank() == 0 {
			require.NoError(t, c.SendWorkStealRequest(1))
		}
		c.Barrier()
		if c.Rank() == 1 {
			req, ok := c.PollWorkStealRequest()
			require.True(t, ok)
			require.NoError(t, c.SendWorkStealResponse(req.From, []int{9}))
		}
		c.Barrier()
		if c.Rank() == 0 {
			resp, ok := c.PollWorkStealResponse()
			require.True(t, ok)
			assert.Equal(t, []int{9}, resp.Nodes)
			assert.Equal(t, 1, resp.From)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestSendToInvalidRank(t *testing.T) {
	err := Run(2, func(c *Communicator) error {
		assert.ErrorIs(t, c.SendDistanceUpdate(5, 0, 1), ErrInvalidRank)
		assert.ErrorIs(t, c.SendPartition(-1, nil), ErrInvalidRank)
		return nil
	})
	require.NoError(t, err)
}

func TestRunPropagatesRankFailure(t *testing.T) {
	boom := errors.New("boom")
	err := Run(2, func(c *Communicator) error {
		if c.Rank() == 1 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rank 1")
}

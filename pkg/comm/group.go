// Package comm provides the process-group communication layer: blocking
// collectives (barrier, all-reduce, broadcast, variable gather) and the
// point-to-point message protocol. Every rank in a group runs the same
// control flow; each collective blocks its caller until all ranks reach
// the matching call. A rank that never arrives stalls the group forever —
// there is no timeout or quorum.
package comm

import (
	"fmt"
	"sync"
)

// ReduceOp combines contributions in an all-reduce.
type ReduceOp int

const (
	Min ReduceOp = iota
	Max
	Sum
)

// Group is a fixed-size in-process process group. Ranks are goroutines;
// each holds its own Communicator handle, so no package-level state exists.
type Group struct {
	size  int
	enter *phaser
	exit  *phaser

	mu          sync.Mutex
	floatAcc    []float64
	intAcc      int
	intSet      bool
	bcastFloats []float64
	bcastInt    int
	bcastGraph  *graphPayload
	gatherParts [][]float64

	mailboxes []*mailbox
}

func NewGroup(size int) *Group {
	if size < 1 {
		panic(fmt.Sprintf("comm: group size %d < 1", size))
	}
	g := &Group{
		size:        size,
		enter:       newPhaser(size),
		exit:        newPhaser(size),
		gatherParts: make([][]float64, size),
		mailboxes:   make([]*mailbox, size),
	}
	for i := range g.mailboxes {
		g.mailboxes[i] = newMailbox()
	}
	return g
}

func (g *Group) Size() int {
	return g.size
}

// Rank returns the communicator handle for one rank.
func (g *Group) Rank(rank int) *Communicator {
	if rank < 0 || rank >= g.size {
		panic(fmt.Sprintf("comm: rank %d outside group of size %d", rank, g.size))
	}
	return &Communicator{group: g, rank: rank}
}

// Close shuts down every mailbox. Call after all ranks have returned.
func (g *Group) Close() {
	for _, m := range g.mailboxes {
		m.close()
	}
}

// Run executes fn on every rank of a fresh group, one goroutine per rank,
// and blocks until all return. Any rank failing fails the whole run: a
// collective protocol cannot tolerate a silently missing participant, so
// callers must treat a non-nil error as a group-wide abort.
func Run(size int, fn func(c *Communicator) error) error {
	g := NewGroup(size)
	defer g.Close()

	errs := make([]error, size)
	var wg sync.WaitGroup
	for rank := 0; rank < size; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			errs[rank] = fn(g.Rank(rank))
		}(rank)
	}
	wg.Wait()

	for rank, err := range errs {
		if err != nil {
			return fmt.Errorf("rank %d: %w", rank, err)
		}
	}
	return nil
}

// Communicator is one rank's handle on its group.
type Communicator struct {
	group *Group
	rank  int
}

func (c *Communicator) Rank() int {
	return c.rank
}

func (c *Communicator) Size() int {
	return c.group.size
}

// phaser is a reusable rendezvous point. The last rank to arrive runs the
// optional onLast action while every other rank is still parked, then all
// are released together.
type phaser struct {
	mu      sync.Mutex
	size    int
	arrived int
	release chan struct{}
}

func newPhaser(size int) *phaser {
	return &phaser{size: size, release: make(chan struct{})}
}

func (p *phaser) await(onLast func()) {
	p.mu.Lock()
	ch := p.release
	p.arrived++
	if p.arrived == p.size {
		p.arrived = 0
		p.release = make(chan struct{})
		if onLast != nil {
			onLast()
		}
		close(ch)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	<-ch
}

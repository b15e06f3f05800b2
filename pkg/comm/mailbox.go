package comm

import "sync"

const mailboxSize = 1024

// mailbox buffers point-to-point messages for one rank, one channel per
// tag so a receiver can probe a single kind without disturbing the rest.
type mailbox struct {
	updates    chan DistanceUpdate
	partitions chan PartitionAssignment
	stealReqs  chan WorkStealRequest
	stealResps chan WorkStealResponse

	mu     sync.RWMutex
	closed bool
}

func newMailbox() *mailbox {
	return &mailbox{
		updates:    make(chan DistanceUpdate, mailboxSize),
		partitions: make(chan PartitionAssignment, mailboxSize),
		stealReqs:  make(chan WorkStealRequest, mailboxSize),
		stealResps: make(chan WorkStealResponse, mailboxSize),
	}
}

func deliver[M Message](m *mailbox, ch chan M, msg M) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrMailboxClosed
	}

	select {
	case ch <- msg:
		return nil
	default:
		return ErrMailboxFull
	}
}

// poll is the non-blocking probe-and-receive pair collapsed into one call.
func poll[M Message](ch chan M) (M, bool) {
	select {
	case msg, ok := <-ch:
		if !ok {
			var zero M
			return zero, false
		}
		return msg, true
	default:
		var zero M
		return zero, false
	}
}

func (m *mailbox) close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.updates)
		close(m.partitions)
		close(m.stealReqs)
		close(m.stealResps)
	}
}

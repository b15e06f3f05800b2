package comm

// Point-to-point messaging. Sends are non-blocking against a bounded
// mailbox; receives come in a blocking form (partition assignment) and a
// probe-and-receive form (everything else). The work-steal pair is part
// of the protocol surface but is not called by the synchronous engine.

func (c *Communicator) checkRank(to int) error {
	if to < 0 || to >= c.group.size {
		return ErrInvalidRank
	}
	return nil
}

// SendDistanceUpdate pushes one tentative distance to another rank's
// mailbox, stamped with the sender's rank.
func (c *Communicator) SendDistanceUpdate(to int, node int, distance float64) error {
	if err := c.checkRank(to); err != nil {
		return err
	}
	m := c.group.mailboxes[to]
	return deliver(m, m.updates, DistanceUpdate{Node: node, Distance: distance, From: c.rank})
}

// PollDistanceUpdate probes the caller's mailbox without blocking.
func (c *Communicator) PollDistanceUpdate() (DistanceUpdate, bool) {
	return poll(c.group.mailboxes[c.rank].updates)
}

// SendPartition assigns a set of node ids to another rank.
func (c *Communicator) SendPartition(to int, nodes []int) error {
	if err := c.checkRank(to); err != nil {
		return err
	}
	m := c.group.mailboxes[to]
	return deliver(m, m.partitions, PartitionAssignment{Nodes: nodes, From: c.rank})
}

// RecvPartition blocks until a partition assignment arrives, returning
// nil if the mailbox was closed first.
func (c *Communicator) RecvPartition() []int {
	msg, ok := <-c.group.mailboxes[c.rank].partitions
	if !ok {
		return nil
	}
	return msg.Nodes
}

// SendWorkStealRequest asks another rank for surplus nodes. Reserved.
func (c *Communicator) SendWorkStealRequest(to int) error {
	if err := c.checkRank(to); err != nil {
		return err
	}
	m := c.group.mailboxes[to]
	return deliver(m, m.stealReqs, WorkStealRequest{From: c.rank})
}

// PollWorkStealRequest probes for pending steal requests. Reserved.
func (c *Communicator) PollWorkStealRequest() (WorkStealRequest, bool) {
	return poll(c.group.mailboxes[c.rank].stealReqs)
}

// SendWorkStealResponse answers a steal request. Reserved.
func (c *Communicator) SendWorkStealResponse(to int, nodes []int) error {
	if err := c.checkRank(to); err != nil {
		return err
	}
	m := c.group.mailboxes[to]
	return deliver(m, m.stealResps, WorkStealResponse{Nodes: nodes, From: c.rank})
}

// PollWorkStealResponse probes for steal answers. Reserved.
func (c *Communicator) PollWorkStealResponse() (WorkStealResponse, bool) {
	return poll(c.group.mailboxes[c.rank].stealResps)
}

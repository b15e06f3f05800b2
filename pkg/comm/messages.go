package comm

// Tag identifies a message kind on the wire. The full set is part of the
// protocol surface; the synchronous engine only exercises GraphData, the
// distance merge (as an all-reduce), barrier and the termination concept.
// The rest are reserved extension points.
type Tag int

const (
	TagGraphData Tag = iota + 1
	TagPartitionSize
	TagPartitionNodes
	TagDistanceUpdate
	TagPathRequest
	TagPathResponse
	TagWorkStealRequest
	TagWorkStealResponse
	TagTerminate
)

// Message is any payload deliverable to a rank's mailbox.
type Message interface {
	Type() string
}

// DistanceUpdate carries one tentative distance from the sending rank.
type DistanceUpdate struct {
	Node     int     `json:"node"`
	Distance float64 `json:"distance"`
	From     int     `json:"from"`
}

func (DistanceUpdate) Type() string { return "DistanceUpdate" }

// PartitionAssignment hands a worker the node ids it is responsible for.
type PartitionAssignment struct {
	Nodes []int `json:"nodes"`
	From  int   `json:"from"`
}

func (PartitionAssignment) Type() string { return "PartitionAssignment" }

// WorkStealRequest asks another rank to give up part of its partition.
// Reserved: the shipped engine runs a fixed partition for the whole run.
type WorkStealRequest struct {
	From int `json:"from"`
}

func (WorkStealRequest) Type() string { return "WorkStealRequest" }

// WorkStealResponse answers a WorkStealRequest with zero or more node ids.
type WorkStealResponse struct {
	Nodes []int `json:"nodes"`
	From  int   `json:"from"`
}

func (WorkStealResponse) Type() string { return "WorkStealResponse" }

// Terminate signals the end of a run. Reserved: the engine terminates
// through the convergence all-reduce instead.
type Terminate struct {
	From int `json:"from"`
}

func (Terminate) Type() string { return "Terminate" }

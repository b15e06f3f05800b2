package comm

import "errors"

var (
	ErrMailboxFull = errors.New("mailbox is full")

	ErrMailboxClosed = errors.New("mailbox is closed")

	ErrInvalidRank = errors.New("rank outside process group")
)

package sim

import "sync/atomic"

// CardId is a process-unique opaque handle for a runtime card. Ids are
// never reused within a process; the allocator is a single atomic,
// monotonic counter shared by every simulation in the process.
type CardId uint64

var nextCardID uint64

// NewCardID mints the next globally unique CardId. Safe for concurrent use
// across simulation workers.
func NewCardID() CardId {
	return CardId(atomic.AddUint64(&nextCardID, 1))
}

package utils

import (
	"sync/atomic"
	"time"
)

// counter backs NextID. Seeding from wall-clock milliseconds keeps new ids
// on the same scale as data produced by the reference generator, while the
// atomic increment makes rapid sequential creates collision-free.
var counter atomic.Int64

func init() {
	counter.Store(time.Now().UnixMilli())
}

// NextID returns a process-wide unique, monotonically increasing id.
func NextID() int64 {
	return counter.Add(1)
}

// EnsureIDAfter advances the allocator past id, so ids loaded from existing
// data are never handed out again.
func EnsureIDAfter(id int64) {
	for {
		cur := counter.Load()
		if cur >= id {
			return
		}
		if counter.CompareAndSwap(cur, id) {
			return
		}
	}
}

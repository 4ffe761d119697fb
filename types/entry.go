package types

import "time"

/*
Entry is the unit of storage inside the bounded store.

Each key maps to an *Entry rather than directly to a value, so the store can
keep the bookkeeping that eviction and expiry need (when the entry was
created, when it was last read, when it dies) next to the payload itself.

The store owns every Entry it holds. Callers never receive a pointer into
store state: Get hands back the Value only, and snapshot methods copy.

Entry is intentionally mutable for timestamps. Mutation always happens under
the store's lock, so LastAccessedAt >= CreatedAt holds at every observable
instant.
*/
type Entry struct {
	Key            string
	Value          any
	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpireAt       time.Time // zero => no TTL, capacity eviction only
}

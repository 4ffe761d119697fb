// Package expiration defines how entries age out of the store over time.
package expiration

import (
	"time"

	"bcache/types"
)

/*
Strategy is the rule set for time-based death of an entry. The store asks
the strategy three questions: is this entry dead right now, what happens to
its timestamps on a read, and what happens on a write.

All methods are called with the store's lock held and receive the current
time from the store, so a single operation sees one consistent "now" across
the expiry check and the timestamp updates.
*/
type Strategy interface {

	// IsExpired reports whether the entry is dead at the given instant.
	// The boundary is inclusive: an entry whose ExpireAt equals now is
	// already dead.
	IsExpired(*types.Entry, time.Time) bool

	// OnAccess is applied after a successful read.
	OnAccess(*types.Entry, time.Time)

	// OnWrite is applied when an entry is inserted or overwritten.
	OnWrite(*types.Entry, time.Time)
}

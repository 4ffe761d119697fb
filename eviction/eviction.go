package eviction

import (
	"errors"
	"fmt"
)

/*
This package decides which key leaves the store when capacity runs out.

The store itself never ranks keys. It reports reads and writes to a Policy
and, when it must shrink by one, asks the Policy for a victim. Keeping the
ranking behind an interface means the eviction algorithm can be swapped
without touching store code.

One contract matters for correctness: the store only reports LIVE keys.
Expired entries are removed through the expiry path (Remove), never handed
out as eviction victims, so Evict can only ever return a key the store still
considers live.
*/

/*
Policy is the interface every eviction strategy must satisfy.

All methods are called with the store's lock held, so implementations need
no locking of their own and always see a consistent view of the live key
set.
*/
type Policy interface {

	// OnGet is called whenever a live key is read.
	//
	// Recency-based strategies (LRU) reorder on this event; others may
	// count it (LFU) or ignore it entirely (FIFO).
	OnGet(string)

	// OnPut is called whenever a key is inserted. Overwrites of an
	// existing key do not re-enter through OnPut; the store reports them
	// as accesses instead.
	OnPut(string)

	// Remove is called when a key leaves the store for any reason other
	// than eviction: explicit delete or TTL expiry. The policy must drop
	// its bookkeeping for the key.
	Remove(string)

	// Evict returns the key that should be removed to make room. The
	// second result is false when the policy tracks nothing; keys are
	// opaque, so even "" is a valid victim and cannot double as a
	// sentinel. The store performs the actual removal.
	Evict() (string, bool)
}

// PolicyType identifies a supported eviction strategy.
type PolicyType string

const (
	// LRU evicts the key that has gone unread for the longest time. This
	// is the default: a session nobody touched and a validation rule
	// nobody evaluated are the safest things to drop.
	LRU PolicyType = "LRU"

	// LFU evicts the key with the fewest reads. Useful when a stable hot
	// set should survive bursts of one-off keys.
	LFU PolicyType = "LFU"

	// FIFO evicts the oldest inserted key regardless of access.
	FIFO PolicyType = "FIFO"
)

// ErrUnknownPolicy is returned by New for a PolicyType it does not know.
var ErrUnknownPolicy = errors.New("eviction: unknown policy")

// New builds the policy implementation for the given type. An empty type
// selects the LRU default; an unrecognized one is a configuration error
// reported to the caller.
func New(t PolicyType) (Policy, error) {
	switch t {
	case LRU, "":
		return newLRU(), nil
	case LFU:
		return newLFU(), nil
	case FIFO:
		return newFIFO(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, string(t))
	}
}

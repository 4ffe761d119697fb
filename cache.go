package bcache

import "time"

/*
Cache is the public contract of the bounded store, the surface its
consumers — session middleware, the rule registry, monitoring — program
against. *Store is the only implementation in this module; the interface
exists so those consumers can be handed a store without depending on its
concrete type, and so tests can substitute one.
*/
type Cache interface {

	// Set inserts or overwrites key with the store's default TTL.
	Set(key string, value any)

	// SetWithTTL inserts or overwrites key with an explicit TTL. A
	// non-positive ttl falls back to the default; if neither is set the
	// entry only ever leaves through delete or capacity eviction.
	SetWithTTL(key string, value any, ttl time.Duration)

	// Get returns the live value for key, or false for a key that was
	// never set, was deleted, was evicted, or has expired.
	Get(key string) (any, bool)

	// Renew resets the TTL of a live entry under a single lock
	// acquisition, reporting whether it was live. It never re-inserts a
	// key that died in the meantime.
	Renew(key string, ttl time.Duration) bool

	// Delete removes key and reports whether a live entry was removed.
	Delete(key string) bool

	// Keys enumerates the live keys in sorted order.
	Keys() []string

	// Items snapshots the live entries without touching recency.
	Items() map[string]any

	// Stats reports the current occupancy and lifetime counters.
	Stats() Stats

	// Close stops the background sweeper.
	Close()
}

var _ Cache = (*Store)(nil)

/*
Package session exposes the bounded store as a session store.

Each session is stored under its session ID with a per-entry TTL, so an
abandoned session dies on its own and an active one can be renewed with
Touch. Capacity still applies: a flood of new sessions evicts the least
recently used ones rather than growing without bound.

The payload is opaque. Middleware decides what a session carries; this
package never inspects it.
*/
package session

import (
	"time"

	"bcache"
)

// Store is a thin wrapper giving session semantics to a bounded store.
// The underlying store handle is provided by the caller; Close forwards to
// it so middleware can tear the pair down together.
type Store struct {
	cache bcache.Cache
}

// New wraps an existing store.
func New(cache bcache.Cache) *Store {
	return &Store{cache: cache}
}

// Put stores or replaces the session payload under id. A non-positive ttl
// falls back to the underlying store's default TTL.
func (s *Store) Put(id string, payload any, ttl time.Duration) {
	s.cache.SetWithTTL(id, payload, ttl)
}

// Get returns the live payload for id. An expired or evicted session is
// absent, exactly as if it had never been stored.
func (s *Store) Get(id string) (any, bool) {
	return s.cache.Get(id)
}

// Touch renews a live session for another ttl from now and reports whether
// the session existed. The payload is unchanged. Renewal happens under a
// single store lock acquisition, so a session that expires or is evicted
// concurrently stays dead rather than being re-inserted.
func (s *Store) Touch(id string, ttl time.Duration) bool {
	return s.cache.Renew(id, ttl)
}

// Delete ends a session, reporting whether it was live.
func (s *Store) Delete(id string) bool {
	return s.cache.Delete(id)
}

// Stats reports the underlying store's occupancy and counters.
func (s *Store) Stats() bcache.Stats {
	return s.cache.Stats()
}

// Close stops the underlying store's sweeper.
func (s *Store) Close() {
	s.cache.Close()
}

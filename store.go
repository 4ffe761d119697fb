/*
Package bcache implements a capacity-bounded, eviction-managed in-memory
key/value store with optional per-entry time-to-live.

A Store holds at most MaxEntries live entries. Inserting a new key into a
full store synchronously removes exactly one victim chosen by the eviction
policy (least recently used by default). Entries with a TTL die the instant
their deadline passes: lazy checks in Get, Set, Renew, Delete and Stats guarantee
a dead entry is never observable, and an optional background sweeper
reclaims the memory of entries nobody touches again.

A Store is a shared, in-process resource: one mutex serializes all mutation
(including the recency update inside Get and the sweeper's passes), because
eviction needs a consistent view of every live entry at decision time. No
operation performs I/O; latency is bounded by the number of live entries.
*/
package bcache

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"bcache/eviction"
	"bcache/expiration"
	"bcache/types"
)

// ErrInvalidCapacity is returned by New when MaxEntries is not positive.
// A store with no room is a configuration mistake, reported at construction
// rather than deferred to the first Set.
var ErrInvalidCapacity = errors.New("bcache: max entries must be positive")

/*
Config carries the construction-time settings of a Store. MaxEntries is
required; everything else has a working default.
*/
type Config struct {

	// MaxEntries is the fixed capacity. Immutable after construction.
	MaxEntries int

	// DefaultTTL applies when Set is used or SetWithTTL is called with a
	// non-positive ttl. Zero means entries without an explicit TTL never
	// expire by time.
	DefaultTTL time.Duration

	// SweepInterval is the period of the background expiry sweeper. Zero
	// disables the sweeper; lazy expiry still keeps every observation
	// correct, the sweeper only reclaims memory proactively.
	SweepInterval time.Duration

	// Policy selects the eviction strategy. Defaults to LRU.
	Policy eviction.PolicyType

	// Strategy selects the expiration rule. Defaults to ExpireAfterWrite.
	Strategy expiration.Strategy

	// Metrics receives lifecycle events. Defaults to a no-op. The store
	// additionally keeps its own counters for Stats regardless of this.
	Metrics types.Metrics
}

/*
Store is the bounded key/value container. Create one with New; the zero
value is not usable.
*/
type Store struct {
	mu      sync.RWMutex
	entries map[string]*types.Entry

	capacity   int
	defaultTTL time.Duration
	policy     eviction.Policy
	strategy   expiration.Strategy

	counters types.CounterMetrics
	metrics  types.Metrics

	stop      chan struct{}
	swept     sync.WaitGroup
	closeOnce sync.Once
}

// New builds a Store from cfg and, when a sweep interval is configured,
// starts its background sweeper. Close releases the sweeper again.
func New(cfg Config) (*Store, error) {
	if cfg.MaxEntries <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, cfg.MaxEntries)
	}

	policy, err := eviction.New(cfg.Policy)
	if err != nil {
		return nil, err
	}

	strategy := cfg.Strategy
	if strategy == nil {
		strategy = expiration.ExpireAfterWrite{}
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	s := &Store{
		entries:    make(map[string]*types.Entry, cfg.MaxEntries),
		capacity:   cfg.MaxEntries,
		defaultTTL: cfg.DefaultTTL,
		policy:     policy,
		strategy:   strategy,
		metrics:    metrics,
		stop:       make(chan struct{}),
	}

	if cfg.SweepInterval > 0 {
		s.swept.Add(1)
		go s.sweepLoop(cfg.SweepInterval)
	}
	return s, nil
}

// Set inserts or overwrites the entry for key, applying the store's
// default TTL if one is configured.
func (s *Store) Set(key string, value any) {
	s.SetWithTTL(key, value, 0)
}

/*
SetWithTTL inserts or overwrites the entry for key with an explicit TTL.
A non-positive ttl falls back to the store's default; if neither is set the
entry never expires by time.

Overwriting an existing key never counts as growth and never evicts a third
entry. Inserting a new key into a full store removes exactly one entry
first: an expired one if any exists (expiry path), otherwise the eviction
policy's victim.
*/
func (s *Store) SetWithTTL(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	if ent, ok := s.entries[key]; ok {
		// Overwrite in place. An expired entry under this key is being
		// replaced anyway, so it is not routed through the expiry path.
		ent.Value = value
		ent.ExpireAt = time.Time{}
		if ttl > 0 {
			ent.ExpireAt = now.Add(ttl)
		}
		s.strategy.OnWrite(ent, now)
		s.policy.OnGet(key)
		return
	}

	if len(s.entries) >= s.capacity {
		// Reclaim dead entries before sacrificing a live one. Expired
		// entries are never valid eviction victims.
		s.removeExpiredLocked(now)
	}
	if len(s.entries) >= s.capacity {
		if victim, ok := s.policy.Evict(); ok {
			delete(s.entries, victim)
			s.counters.Eviction()
			s.metrics.Eviction()
		}
	}

	ent := &types.Entry{Key: key, Value: value}
	if ttl > 0 {
		ent.ExpireAt = now.Add(ttl)
	}
	s.strategy.OnWrite(ent, now)
	s.entries[key] = ent
	s.policy.OnPut(key)
}

/*
Get returns the live value for key. The second result is false when the key
was never set, was deleted, was evicted, or has expired — an expired entry
is never returned even if no sweep has physically removed it yet.

A successful lookup updates the entry's access time and its eviction
recency; that mutation is the only side effect.
*/
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		s.counters.Miss()
		s.metrics.Miss()
		return nil, false
	}

	now := time.Now()
	if s.strategy.IsExpired(ent, now) {
		s.removeEntryLocked(key)
		s.counters.Expire()
		s.metrics.Expire()
		s.counters.Miss()
		s.metrics.Miss()
		return nil, false
	}

	s.strategy.OnAccess(ent, now)
	s.policy.OnGet(key)
	s.counters.Hit()
	s.metrics.Hit()
	return ent.Value, true
}

// Renew resets the TTL of a live entry to ttl from now, keeping its value,
// and reports whether the entry was live. A non-positive ttl falls back to
// the store's default. The whole check-and-reset happens under one lock
// acquisition, so a renewed entry is guaranteed to have been live at the
// moment of renewal; Renew can never re-insert a key that expired or was
// evicted in between.
func (s *Store) Renew(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return false
	}
	now := time.Now()
	if s.strategy.IsExpired(ent, now) {
		s.removeEntryLocked(key)
		s.counters.Expire()
		s.metrics.Expire()
		return false
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	ent.ExpireAt = time.Time{}
	if ttl > 0 {
		ent.ExpireAt = now.Add(ttl)
	}
	s.strategy.OnAccess(ent, now)
	s.policy.OnGet(key)
	return true
}

// Delete removes the entry for key and reports whether a live entry was
// removed. Deleting an absent key is not an error; deleting an entry that
// already expired reclaims it through the expiry path and reports false,
// consistent with Get's view of the key.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return false
	}
	if s.strategy.IsExpired(ent, time.Now()) {
		s.removeEntryLocked(key)
		s.counters.Expire()
		s.metrics.Expire()
		return false
	}
	s.removeEntryLocked(key)
	return true
}

// Keys returns the live keys in sorted order. Enumeration does not touch
// access times or eviction recency.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	keys := make([]string, 0, len(s.entries))
	for k, ent := range s.entries {
		if s.strategy.IsExpired(ent, now) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Items returns a copied snapshot of the live entries' values keyed by
// their keys. Like Keys, it does not touch recency bookkeeping.
func (s *Store) Items() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	items := make(map[string]any, len(s.entries))
	for k, ent := range s.entries {
		if s.strategy.IsExpired(ent, now) {
			continue
		}
		items[k] = ent.Value
	}
	return items
}

// Cap returns the configured capacity.
func (s *Store) Cap() int { return s.capacity }

// Close stops the background sweeper and waits for its final pass to
// finish. Close is idempotent; the store itself remains usable afterwards,
// with lazy expiry as the only reclamation.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.stop) })
	s.swept.Wait()
}

// removeEntryLocked deletes an entry and its eviction bookkeeping. Callers
// hold the write lock and account for metrics themselves, since the reason
// for removal (delete vs expiry) differs per call site.
func (s *Store) removeEntryLocked(key string) {
	delete(s.entries, key)
	s.policy.Remove(key)
}

// removeExpiredLocked removes every entry dead at now and returns how many
// it removed. Callers hold the write lock.
func (s *Store) removeExpiredLocked(now time.Time) int {
	removed := 0
	for k, ent := range s.entries {
		if s.strategy.IsExpired(ent, now) {
			s.removeEntryLocked(k)
			s.counters.Expire()
			s.metrics.Expire()
			removed++
		}
	}
	return removed
}

package types

import "go.uber.org/atomic"

// This file defines how the store reports what it is doing.

/*
Metrics is the set of events the store emits during its lifecycle. The store
calls exactly one of these methods per operation outcome, always after the
outcome is decided.
*/
type Metrics interface {

	// Hit is called when Get returns a live value.
	Hit()

	// Miss is called when Get finds nothing: the key was never set, was
	// deleted, was evicted, or has expired.
	Miss()

	// Eviction is called when a key is removed because the store is at
	// capacity and needs room for a new key.
	Eviction()

	// Expire is called when a key is removed because its TTL elapsed,
	// whether that happens lazily on access or in a sweep pass.
	Expire()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Users who do not care about metrics should not have to implement the
interface, and the store should not have to nil-check before every event.
NoopMetrics is the default that makes both true.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}

/*
CounterMetrics is a Metrics implementation backed by atomic counters.

The store keeps one of these internally so Stats can report hit/miss/
eviction/expiry totals without extra locking; it is also usable directly by
callers that want a cheap concurrent counter set.
*/
type CounterMetrics struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
	expired   atomic.Uint64
}

func (m *CounterMetrics) Hit()      { m.hits.Inc() }
func (m *CounterMetrics) Miss()     { m.misses.Inc() }
func (m *CounterMetrics) Eviction() { m.evictions.Inc() }
func (m *CounterMetrics) Expire()   { m.expired.Inc() }

// Hits returns the number of successful lookups so far.
func (m *CounterMetrics) Hits() uint64 { return m.hits.Load() }

// Misses returns the number of negative lookups so far.
func (m *CounterMetrics) Misses() uint64 { return m.misses.Load() }

// Evictions returns the number of capacity-driven removals so far.
func (m *CounterMetrics) Evictions() uint64 { return m.evictions.Load() }

// Expirations returns the number of TTL-driven removals so far.
func (m *CounterMetrics) Expirations() uint64 { return m.expired.Load() }

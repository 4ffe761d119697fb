package bcache

import "time"

/*
Stats is a point-in-time view of a store, consumed by monitoring and by the
test harness. TotalKeys counts live entries only: a key that Get would
report absent — deleted, evicted, or past its deadline — is never counted,
even when no sweep has physically removed it yet.
*/
type Stats struct {
	TotalKeys   int    `json:"totalKeys"`
	Capacity    int    `json:"capacity"`
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expirations uint64 `json:"expirations"`
}

// Stats computes the current snapshot. It is read-only: no purge, no
// recency updates, no way for a concurrent caller to observe a negative or
// over-capacity count.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Capacity:    s.capacity,
		Hits:        s.counters.Hits(),
		Misses:      s.counters.Misses(),
		Evictions:   s.counters.Evictions(),
		Expirations: s.counters.Expirations(),
	}
	now := time.Now()
	for _, ent := range s.entries {
		if !s.strategy.IsExpired(ent, now) {
			st.TotalKeys++
		}
	}
	return st
}

package bcache

import "time"

/*
The expiry sweeper reclaims entries whose TTL elapsed without anyone
touching them again. Lazy checks in Get/Set/Delete/Stats already make dead
entries unobservable, so the sweeper is purely a memory-reclamation
optimization: disabling it (SweepInterval == 0) costs no correctness.

A pass takes the same store lock as foreground traffic and scans the live
set once, so its hold time is bounded by the current entry count, itself
bounded by capacity.
*/

// Sweep runs one pass immediately, removing every currently-expired entry,
// and returns how many entries it removed. The background loop calls this
// on every tick; it is exported so callers without a sweeper can reclaim on
// their own schedule.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeExpiredLocked(time.Now())
}

func (s *Store) sweepLoop(interval time.Duration) {
	defer s.swept.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stop:
			return
		}
	}
}

package expiration

import (
	"time"

	"bcache/types"
)

/*
ExpireAfterAccess is a sliding TTL: every successful read pushes the
deadline forward by TTL, so an entry stays alive as long as something keeps
using it and dies TTL after it was last touched.

The session and rule-registry wrappers do not use this strategy; it exists
for callers that want idle-timeout semantics instead of a fixed lifetime.
*/
type ExpireAfterAccess struct {

	// TTL is how long an entry remains valid after its most recent access.
	TTL time.Duration
}

// IsExpired reports whether the sliding deadline has been reached.
func (e *ExpireAfterAccess) IsExpired(ent *types.Entry, now time.Time) bool {
	return !ent.ExpireAt.IsZero() && !now.Before(ent.ExpireAt)
}

// OnAccess records the read and slides the deadline forward.
func (e *ExpireAfterAccess) OnAccess(ent *types.Entry, now time.Time) {
	ent.LastAccessedAt = now
	ent.ExpireAt = now.Add(e.TTL)
}

// OnWrite stamps the entry and sets an initial deadline unless the caller
// already set an explicit one through a per-entry TTL.
func (e *ExpireAfterAccess) OnWrite(ent *types.Entry, now time.Time) {
	ent.CreatedAt = now
	ent.LastAccessedAt = now
	if ent.ExpireAt.IsZero() {
		ent.ExpireAt = now.Add(e.TTL)
	}
}

package expiration

import (
	"time"

	"bcache/types"
)

/*
ExpireAfterWrite is the default strategy: an entry's deadline is fixed at
write time and reads do not move it. A session stored with a 30-minute TTL
dies exactly 30 minutes after it was stored, no matter how often it is read
in between.

The store computes ExpireAt from the per-entry TTL before calling OnWrite,
so this strategy only maintains the access bookkeeping and leaves the
deadline alone.
*/
type ExpireAfterWrite struct{}

// IsExpired reports whether the deadline has been reached. A zero ExpireAt
// means the entry never expires by time.
func (ExpireAfterWrite) IsExpired(ent *types.Entry, now time.Time) bool {
	return !ent.ExpireAt.IsZero() && !now.Before(ent.ExpireAt)
}

// OnAccess records the read. The deadline is untouched; that is the whole
// point of expire-after-write.
func (ExpireAfterWrite) OnAccess(ent *types.Entry, now time.Time) {
	ent.LastAccessedAt = now
}

// OnWrite stamps creation and access times. ExpireAt is owned by the store.
func (ExpireAfterWrite) OnWrite(ent *types.Entry, now time.Time) {
	ent.CreatedAt = now
	ent.LastAccessedAt = now
}

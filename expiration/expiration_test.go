package expiration

import (
	"testing"
	"time"

	"bcache/types"
)

func TestExpireAfterWriteBoundaryIsInclusive(t *testing.T) {
	var s ExpireAfterWrite
	now := time.Now()
	ent := &types.Entry{ExpireAt: now.Add(time.Second)}

	if s.IsExpired(ent, now) {
		t.Fatal("entry before its deadline must be live")
	}
	if !s.IsExpired(ent, ent.ExpireAt) {
		t.Fatal("entry exactly at its deadline must be dead")
	}
	if !s.IsExpired(ent, ent.ExpireAt.Add(time.Nanosecond)) {
		t.Fatal("entry past its deadline must be dead")
	}
}

func TestExpireAfterWriteZeroDeadlineNeverExpires(t *testing.T) {
	var s ExpireAfterWrite
	ent := &types.Entry{}

	if s.IsExpired(ent, time.Now().Add(1000*time.Hour)) {
		t.Fatal("entry without a deadline must never expire by time")
	}
}

func TestExpireAfterWriteReadsDoNotMoveDeadline(t *testing.T) {
	var s ExpireAfterWrite
	now := time.Now()
	ent := &types.Entry{ExpireAt: now.Add(time.Minute)}
	deadline := ent.ExpireAt

	s.OnAccess(ent, now.Add(30*time.Second))

	if !ent.ExpireAt.Equal(deadline) {
		t.Fatal("OnAccess must not slide the deadline")
	}
	if !ent.LastAccessedAt.Equal(now.Add(30 * time.Second)) {
		t.Fatal("OnAccess must record the access time")
	}
}

func TestExpireAfterWriteStampsOnWrite(t *testing.T) {
	var s ExpireAfterWrite
	now := time.Now()
	ent := &types.Entry{}

	s.OnWrite(ent, now)

	if !ent.CreatedAt.Equal(now) || !ent.LastAccessedAt.Equal(now) {
		t.Fatal("OnWrite must stamp creation and access times")
	}
	if ent.LastAccessedAt.Before(ent.CreatedAt) {
		t.Fatal("LastAccessedAt must never precede CreatedAt")
	}
}

func TestExpireAfterAccessSlidesDeadline(t *testing.T) {
	s := &ExpireAfterAccess{TTL: time.Minute}
	now := time.Now()
	ent := &types.Entry{}

	s.OnWrite(ent, now)
	if !ent.ExpireAt.Equal(now.Add(time.Minute)) {
		t.Fatal("OnWrite must set an initial sliding deadline")
	}

	later := now.Add(30 * time.Second)
	s.OnAccess(ent, later)
	if !ent.ExpireAt.Equal(later.Add(time.Minute)) {
		t.Fatal("OnAccess must push the deadline forward")
	}
}

func TestExpireAfterAccessKeepsExplicitDeadline(t *testing.T) {
	s := &ExpireAfterAccess{TTL: time.Minute}
	now := time.Now()
	explicit := now.Add(5 * time.Second)
	ent := &types.Entry{ExpireAt: explicit}

	s.OnWrite(ent, now)

	if !ent.ExpireAt.Equal(explicit) {
		t.Fatal("an explicit per-entry deadline must win over the strategy TTL")
	}
}

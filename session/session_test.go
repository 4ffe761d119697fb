package session_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bcache"
	"bcache/session"
)

func newSessionStore(t *testing.T, max int, defaultTTL time.Duration) *session.Store {
	t.Helper()
	store, err := bcache.New(bcache.Config{
		MaxEntries:    max,
		DefaultTTL:    defaultTTL,
		SweepInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	s := session.New(store)
	t.Cleanup(s.Close)
	return s
}

func TestPutAndGet(t *testing.T) {
	s := newSessionStore(t, 10, time.Minute)

	payload := map[string]any{"user": "u-1", "roles": []string{"admin"}}
	s.Put("sess-1", payload, 0)

	got, ok := s.Get("sess-1")
	require.True(t, ok)
	require.Equal(t, payload, got)

	_, ok = s.Get("sess-2")
	require.False(t, ok)
}

func TestSessionExpires(t *testing.T) {
	s := newSessionStore(t, 10, time.Minute)

	s.Put("short", "payload", 30*time.Millisecond)
	_, ok := s.Get("short")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.Get("short")
	require.False(t, ok)
}

func TestTouchRenewsSession(t *testing.T) {
	s := newSessionStore(t, 10, 0)

	s.Put("sess", "payload", 50*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	require.True(t, s.Touch("sess", 50*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	// Past the original deadline but within the renewed one.
	got, ok := s.Get("sess")
	require.True(t, ok)
	require.Equal(t, "payload", got)
}

func TestTouchOfDeadSessionFails(t *testing.T) {
	s := newSessionStore(t, 10, 0)

	s.Put("sess", "payload", 20*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	require.False(t, s.Touch("sess", time.Minute))

	// The failed touch must not bring the session back.
	_, ok := s.Get("sess")
	require.False(t, ok)
}

func TestTouchDoesNotResurrectEndedSession(t *testing.T) {
	s := newSessionStore(t, 10, 0)

	s.Put("sess", "payload", time.Minute)
	require.True(t, s.Delete("sess"))

	require.False(t, s.Touch("sess", time.Minute))
	_, ok := s.Get("sess")
	require.False(t, ok)
}

func TestDelete(t *testing.T) {
	s := newSessionStore(t, 10, time.Minute)

	s.Put("sess", "payload", 0)
	require.True(t, s.Delete("sess"))
	require.False(t, s.Delete("sess"))
}

func TestSessionFloodStaysBounded(t *testing.T) {
	const max = 50
	s := newSessionStore(t, max, time.Minute)

	for i := 0; i < 3*max; i++ {
		s.Put(fmt.Sprintf("session-%d", i), i, 0)
	}

	st := s.Stats()
	require.LessOrEqual(t, st.TotalKeys, max)
	require.Equal(t, max, st.Capacity)
}

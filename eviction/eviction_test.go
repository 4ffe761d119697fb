package eviction

import (
	"errors"
	"testing"
)

func mustPolicy(t *testing.T, pt PolicyType) Policy {
	t.Helper()
	p, err := New(pt)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	p := mustPolicy(t, LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.OnGet("a") // a becomes most recently used

	for _, want := range []string{"b", "c", "a"} {
		got, ok := p.Evict()
		if !ok || got != want {
			t.Fatalf("expected %q evicted, got %q (ok=%v)", want, got, ok)
		}
	}
	if got, ok := p.Evict(); ok {
		t.Fatalf("expected empty policy to report no victim, got %q", got)
	}
}

func TestLRUDeterministicUnderRepeatedSequences(t *testing.T) {
	run := func() []string {
		p := mustPolicy(t, LRU)
		p.OnPut("a")
		p.OnPut("b")
		p.OnPut("c")
		p.OnGet("b")
		out := make([]string, 0, 3)
		for k, ok := p.Evict(); ok; k, ok = p.Evict() {
			out = append(out, k)
		}
		return out
	}

	first := run()
	for i := 0; i < 10; i++ {
		again := run()
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("eviction order changed between runs: %v vs %v", first, again)
			}
		}
	}
}

func TestLRURemoveKeepsListConsistent(t *testing.T) {
	p := mustPolicy(t, LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.Remove("b")
	p.Remove("b") // removing twice is harmless

	if got, ok := p.Evict(); !ok || got != "a" {
		t.Fatalf("expected a, got %q (ok=%v)", got, ok)
	}
	if got, ok := p.Evict(); !ok || got != "c" {
		t.Fatalf("expected c, got %q (ok=%v)", got, ok)
	}
}

func TestLRURepeatedPutDoesNotDuplicate(t *testing.T) {
	p := mustPolicy(t, LRU)

	p.OnPut("a")
	p.OnPut("a")
	p.OnPut("b")

	if got, ok := p.Evict(); !ok || got != "a" {
		t.Fatalf("expected a, got %q (ok=%v)", got, ok)
	}
	if got, ok := p.Evict(); !ok || got != "b" {
		t.Fatalf("expected b, got %q (ok=%v)", got, ok)
	}
	if got, ok := p.Evict(); ok {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestLRUTracksEmptyStringKey(t *testing.T) {
	p := mustPolicy(t, LRU)

	p.OnPut("")
	p.OnPut("a")

	got, ok := p.Evict()
	if !ok || got != "" {
		t.Fatalf("expected the empty key as victim, got %q (ok=%v)", got, ok)
	}
	got, ok = p.Evict()
	if !ok || got != "a" {
		t.Fatalf("expected a, got %q (ok=%v)", got, ok)
	}
	if _, ok := p.Evict(); ok {
		t.Fatal("expected no victim from an empty policy")
	}
}

func TestFIFOEvictsInInsertionOrder(t *testing.T) {
	p := mustPolicy(t, FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a") // reads are irrelevant to FIFO
	p.OnPut("c")

	for _, want := range []string{"a", "b", "c"} {
		if got, ok := p.Evict(); !ok || got != want {
			t.Fatalf("expected %q, got %q (ok=%v)", want, got, ok)
		}
	}
}

func TestFIFORemovePreservesOrder(t *testing.T) {
	p := mustPolicy(t, FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.Remove("a")

	if got, ok := p.Evict(); !ok || got != "b" {
		t.Fatalf("expected b, got %q (ok=%v)", got, ok)
	}
}

func TestLFUEvictsLeastFrequentlyUsed(t *testing.T) {
	p := mustPolicy(t, LFU)

	p.OnPut("hot")
	p.OnPut("cold")
	p.OnGet("hot")
	p.OnGet("hot")

	if got, ok := p.Evict(); !ok || got != "cold" {
		t.Fatalf("expected cold, got %q (ok=%v)", got, ok)
	}
	if got, ok := p.Evict(); !ok || got != "hot" {
		t.Fatalf("expected hot, got %q (ok=%v)", got, ok)
	}
}

func TestLFURemoveClearsBookkeeping(t *testing.T) {
	p := mustPolicy(t, LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a")
	p.Remove("b")

	if got, ok := p.Evict(); !ok || got != "a" {
		t.Fatalf("expected a, got %q (ok=%v)", got, ok)
	}
	if got, ok := p.Evict(); ok {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestDefaultPolicyTypeIsLRU(t *testing.T) {
	p := mustPolicy(t, "")
	if _, ok := p.(*lru); !ok {
		t.Fatalf("expected LRU default, got %T", p)
	}
}

func TestNewRejectsUnknownPolicyType(t *testing.T) {
	_, err := New("CLOCK")
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

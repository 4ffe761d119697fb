// First-in-first-out eviction.

package eviction

/*
fifo evicts in insertion order and ignores reads entirely. The queue holds
keys oldest-first; the set mirrors the queue so membership checks and
removals do not have to scan.
*/
type fifo struct {
	queue []string
	set   map[string]struct{}
}

func newFIFO() *fifo {
	return &fifo{set: make(map[string]struct{})}
}

// OnGet is a no-op: access order does not matter to FIFO.
func (f *fifo) OnGet(string) {}

// OnPut appends a key the first time it is seen.
func (f *fifo) OnPut(k string) {
	if _, ok := f.set[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.set[k] = struct{}{}
}

// Evict returns the oldest inserted key.
func (f *fifo) Evict() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	k := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.set, k)
	return k, true
}

// Remove drops a key deleted or expired out of band, preserving the order
// of the rest.
func (f *fifo) Remove(k string) {
	if _, ok := f.set[k]; !ok {
		return
	}
	delete(f.set, k)
	for i, v := range f.queue {
		if v == k {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}

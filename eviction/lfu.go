// Least-frequently-used eviction.

package eviction

/*
lfu keeps a read count per key and evicts from the bucket with the lowest
count. Buckets are maps keyed by frequency; minFreq tracks the smallest
occupied bucket so eviction never scans all frequencies.
*/
type lfu struct {
	nodes   map[string]*lfuNode
	buckets map[int]map[string]*lfuNode
	minFreq int
}

type lfuNode struct {
	key  string
	freq int
}

func newLFU() *lfu {
	return &lfu{
		nodes:   make(map[string]*lfuNode),
		buckets: make(map[int]map[string]*lfuNode),
	}
}

// OnGet bumps the key's frequency and moves it to the next bucket.
func (l *lfu) OnGet(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}
	old := n.freq
	n.freq++

	delete(l.buckets[old], k)
	if len(l.buckets[old]) == 0 {
		delete(l.buckets, old)
		if l.minFreq == old {
			l.minFreq++
		}
	}

	if l.buckets[n.freq] == nil {
		l.buckets[n.freq] = make(map[string]*lfuNode)
	}
	l.buckets[n.freq][k] = n
}

// OnPut starts tracking a new key in the frequency-1 bucket.
func (l *lfu) OnPut(k string) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	n := &lfuNode{key: k, freq: 1}
	l.nodes[k] = n
	if l.buckets[1] == nil {
		l.buckets[1] = make(map[string]*lfuNode)
	}
	l.buckets[1][k] = n
	l.minFreq = 1
}

// Evict removes one key from the lowest occupied bucket. Keys sharing the
// minimum frequency are evicted in map iteration order. Removals can leave
// the minFreq bucket empty, so Evict advances minFreq to the next occupied
// bucket before picking.
func (l *lfu) Evict() (string, bool) {
	if len(l.nodes) == 0 {
		return "", false
	}
	for len(l.buckets[l.minFreq]) == 0 {
		delete(l.buckets, l.minFreq)
		l.minFreq++
	}
	for k := range l.buckets[l.minFreq] {
		delete(l.buckets[l.minFreq], k)
		delete(l.nodes, k)
		return k, true
	}
	return "", false
}

// Remove drops a key deleted or expired out of band.
func (l *lfu) Remove(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}
	delete(l.buckets[n.freq], k)
	delete(l.nodes, k)
}

// Least-recently-used eviction.

package eviction

/*
lru tracks usage order with a map plus an intrusive doubly-linked list:
the map gives O(1) lookup of a key's node, the list keeps nodes ordered
from most recently used (head) to least recently used (tail).

The list order is also the tie-break. Two keys can share the same access
timestamp at the store level, but they can never occupy the same list
position: whichever was touched later sits closer to the head. Victim
selection is therefore fully deterministic for a given operation sequence,
which keeps eviction behavior reproducible in tests.
*/
type lru struct {
	nodes map[string]*lruNode
	head  *lruNode // most recently used
	tail  *lruNode // least recently used, next victim
}

// lruNode is one tracked key in the usage list.
type lruNode struct {
	key  string
	prev *lruNode
	next *lruNode
}

func newLRU() *lru {
	return &lru{nodes: make(map[string]*lruNode)}
}

// OnGet marks a key as most recently used by moving its node to the head.
func (l *lru) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		l.pushFront(n)
	}
}

// OnPut starts tracking a new key at the head. A key already tracked is
// left alone; the store reports overwrites through OnGet.
func (l *lru) OnPut(k string) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.pushFront(n)
}

// Evict removes and returns the tail, the least recently used key.
func (l *lru) Evict() (string, bool) {
	if l.tail == nil {
		return "", false
	}
	k := l.tail.key
	l.unlink(l.tail)
	delete(l.nodes, k)
	return k, true
}

// Remove drops a key that left the store through delete or expiry.
func (l *lru) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		delete(l.nodes, k)
	}
}

func (l *lru) pushFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

func (l *lru) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
}

package feed

import (
	"container/list"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

// DefaultMemoCapacity is the number of filter results a Memo keeps.
const DefaultMemoCapacity = 32

type memoKey struct {
	version uint64
	query   string
}

type memoEntry struct {
	key    memoKey
	result notifications.Snapshot
}

// Memo caches Filter results keyed by snapshot version and query, evicting
// the least recently used result once full. A new version never matches an
// old entry, so stale results age out instead of being served.
type Memo struct {
	capacity int
	items    map[memoKey]*list.Element
	order    *list.List
	mu       sync.Mutex

	hits   uint64
	misses uint64
}

// NewMemo creates a Memo. Non-positive capacity uses DefaultMemoCapacity.
func NewMemo(capacity int) *Memo {
	if capacity <= 0 {
		capacity = DefaultMemoCapacity
	}
	return &Memo{
		capacity: capacity,
		items:    make(map[memoKey]*list.Element, capacity),
		order:    list.New(),
	}
}

// Filter returns Filter(snap, query), reusing the result computed earlier for
// the same version and query. The returned snapshot is always a fresh copy.
func (m *Memo) Filter(version uint64, snap notifications.Snapshot, query string) notifications.Snapshot {
	key := memoKey{version: version, query: query}

	m.mu.Lock()
	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		m.hits++
		res := elem.Value.(*memoEntry).result
		m.mu.Unlock()
		return res.Clone()
	}
	m.misses++
	m.mu.Unlock()

	res := Filter(snap, query).Clone()

	m.mu.Lock()
	defer m.mu.Unlock()
	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		return res
	}
	m.items[key] = m.order.PushFront(&memoEntry{key: key, result: res.Clone()})
	if m.order.Len() > m.capacity {
		m.evictOldestLocked()
	}
	return res
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Stats returns cache hits and misses since creation or the last Reset.
func (m *Memo) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// Reset drops every cached result and zeroes the stats.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[memoKey]*list.Element, m.capacity)
	m.order.Init()
	m.hits, m.misses = 0, 0
}

func (m *Memo) evictOldestLocked() {
	elem := m.order.Back()
	if elem == nil {
		return
	}
	m.order.Remove(elem)
	delete(m.items, elem.Value.(*memoEntry).key)
}

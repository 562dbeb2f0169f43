package relay

import "sync"

// matchCacheCapacity bounds the number of memoized trie matches.
const matchCacheCapacity = 100

// cacheEntry is a node of the intrusive recency list.
type cacheEntry[T any] struct {
	key    string
	result *Match[T]
	prev   *cacheEntry[T]
	next   *cacheEntry[T]
}

// recencyCache memoizes trie match results keyed by "method:path".
// A hash map gives O(1) lookup and a doubly linked list keeps entries in
// access order, most recent at the front, so eviction is O(1) too.
//
// The cache is never authoritative: a miss falls back to a full trie
// descent, so eviction can never change a match outcome. It is the only
// mutable state touched during serving, which is why every operation,
// reads included, runs under the mutex (a read reorders the list).
type recencyCache[T any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*cacheEntry[T]
	head     *cacheEntry[T]
	tail     *cacheEntry[T]
	metrics  *routerMetrics
}

func newRecencyCache[T any](capacity int) *recencyCache[T] {
	return &recencyCache[T]{
		capacity: capacity,
		entries:  make(map[string]*cacheEntry[T], capacity),
		metrics:  getRouterMetrics(),
	}
}

// get returns the memoized result for key and marks it most recently used.
func (c *recencyCache[T]) get(key string) (*Match[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.metrics.cacheMisses.Inc()
		return nil, false
	}

	c.moveToFront(entry)
	c.metrics.cacheHits.Inc()
	return entry.result, true
}

// put inserts or overwrites the result for key. When the cache grows past
// capacity the least recently used entry is evicted.
func (c *recencyCache[T]) put(key string, result *Match[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.result = result
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry[T]{key: key, result: result}
	c.entries[key] = entry
	c.pushFront(entry)

	if len(c.entries) > c.capacity {
		lru := c.tail
		c.unlink(lru)
		delete(c.entries, lru.key)
		c.metrics.cacheEvictions.Inc()
	}

	c.metrics.cacheSize.Set(float64(len(c.entries)))
}

// len reports the current number of entries.
func (c *recencyCache[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *recencyCache[T]) pushFront(entry *cacheEntry[T]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *recencyCache[T]) unlink(entry *cacheEntry[T]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

func (c *recencyCache[T]) moveToFront(entry *cacheEntry[T]) {
	if c.head == entry {
		return
	}
	c.unlink(entry)
	c.pushFront(entry)
}

// Package cache holds a bounded LRU cache of search results so the console
// can answer a repeated query without re-running either algorithm. The graph
// never changes after load, so entries never go stale.
package cache

import (
	"container/list"
	"sync"

	"github.com/atharv3903/pathion/internal/model"
)

// defaultCapacity bounds the number of cached results. Queries are typed by
// hand, so even a small bound covers a whole session.
const defaultCapacity = 256

// Key identifies one search run.
type Key struct {
	Start string
	Goal  string
	Mode  model.Mode
}

type entry struct {
	key Key
	val model.Result
}

// ResultCache is a bounded LRU cache of search results.
// Safe for concurrent use.
type ResultCache struct {
	mu       sync.Mutex
	m        map[Key]*list.Element
	ll       *list.List
	capacity int
	// stats
	gets int
	hits int
	puts int
}

// NewResultCache returns a cache with the default capacity.
func NewResultCache() *ResultCache {
	return NewResultCacheWithCap(defaultCapacity)
}

// NewResultCacheWithCap returns a cache holding at most capacity results.
// A non-positive capacity falls back to the default.
func NewResultCacheWithCap(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &ResultCache{
		m:        make(map[Key]*list.Element, capacity),
		ll:       list.New(),
		capacity: capacity,
	}
}

// Get returns the cached result for k, updating LRU position on hit.
func (c *ResultCache) Get(k Key) (model.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	if el, ok := c.m[k]; ok {
		c.hits++
		c.ll.MoveToFront(el)
		return el.Value.(entry).val, true
	}
	return model.Result{}, false
}

// Put stores the result for k, evicting the least-recently-used entry when
// over capacity.
func (c *ResultCache) Put(k Key, v model.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.puts++
	if el, ok := c.m[k]; ok {
		el.Value = entry{key: k, val: v}
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(entry{key: k, val: v})
	c.m[k] = el

	if c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		if tail != nil {
			e := tail.Value.(entry)
			delete(c.m, e.key)
			c.ll.Remove(tail)
		}
	}
}

// Len reports the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Stats returns (gets, hits, puts), snapshot under lock.
func (c *ResultCache) Stats() (gets, hits, puts int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets, c.hits, c.puts
}

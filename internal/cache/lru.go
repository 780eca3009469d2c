package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
)

// LRU is a size-bounded BlockCache with least-recently-used eviction.
// Safe for concurrent use.
type LRU struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[Key]*list.Element
	evictList *list.List

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	key   Key
	value []byte
}

// NewLRU creates an LRU cache holding at most capacity bytes of block
// data.
func NewLRU(capacity int64) *LRU {
	return &LRU{
		capacity:  capacity,
		items:     make(map[Key]*list.Element),
		evictList: list.New(),
	}
}

func (c *LRU) Get(_ context.Context, key Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(el)
		return el.Value.(*entry).value, true
	}
	c.misses.Add(1)
	return nil, false
}

func (c *LRU) Set(_ context.Context, key Key, b []byte) {
	if int64(len(b)) > c.capacity {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		c.size += int64(len(b)) - int64(len(ent.value))
		ent.value = b
		c.evictList.MoveToFront(el)
		c.evict()
		return
	}

	for c.size+int64(len(b)) > c.capacity {
		oldest := c.evictList.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}

	el := c.evictList.PushFront(&entry{key: key, value: b})
	c.items[key] = el
	c.size += int64(len(b))
}

func (c *LRU) Invalidate(predicate func(key Key) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var stale []*list.Element
	for key, el := range c.items {
		if predicate(key) {
			stale = append(stale, el)
		}
	}
	for _, el := range stale {
		c.removeElement(el)
	}
}

func (c *LRU) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Size returns the cached byte count.
func (c *LRU) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *LRU) evict() {
	for c.size > c.capacity {
		oldest := c.evictList.Back()
		if oldest == nil {
			return
		}
		c.removeElement(oldest)
	}
}

func (c *LRU) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	ent := el.Value.(*entry)
	delete(c.items, ent.key)
	c.size -= int64(len(ent.value))
}

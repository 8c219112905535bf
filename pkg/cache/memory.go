package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// MemoryCache is a size-bounded in-process cache with least-recently-used
// eviction.
type MemoryCache struct {
	mu      sync.Mutex
	maxSize int
	size    int
	order   *list.List // front is most recently used
	items   map[string]*list.Element
	now     func() time.Time
}

type memoryEntry struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache returns a cache holding at most maxBytes of values.
func NewMemoryCache(maxBytes int) *MemoryCache {
	return &MemoryCache{
		maxSize: maxBytes,
		order:   list.New(),
		items:   make(map[string]*list.Element),
		now:     time.Now,
	}
}

// Get retrieves a value and marks it as recently used.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	e := el.Value.(*memoryEntry)
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.remove(el)
		return nil, false, nil
	}
	c.order.MoveToFront(el)
	return e.data, true, nil
}

// Set stores a value, evicting old entries to stay within the size bound.
// Values larger than the bound are not stored.
func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	if len(data) > c.maxSize {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
	e := &memoryEntry{key: key, data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.items[key] = c.order.PushFront(e)
	c.size += len(data)

	for c.size > c.maxSize {
		c.remove(c.order.Back())
	}
	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
	return nil
}

// Len returns the number of stored entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close drops every entry.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
	c.size = 0
	return nil
}

func (c *MemoryCache) remove(el *list.Element) {
	e := c.order.Remove(el).(*memoryEntry)
	delete(c.items, e.key)
	c.size -= len(e.data)
}

var _ Cache = (*MemoryCache)(nil)

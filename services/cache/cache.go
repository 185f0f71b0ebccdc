package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is a general purpose in-memory store with per-item TTL. It backs
// the rate limit middlewares.
type Cache struct {
	mu   sync.RWMutex
	data map[string]cacheItem
	ttl  time.Duration
}

type cacheItem struct {
	value    []byte
	cachedAt time.Time
	ttl      time.Duration // optional per-item TTL, overrides the default
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		data: make(map[string]cacheItem),
		ttl:  ttl,
	}
}

func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
	}
}

func (c *Cache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
		ttl:      ttl,
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.data[key]
	if !exists {
		return nil, false
	}

	// Per-item TTL wins over the default
	if item.ttl > 0 {
		if time.Since(item.cachedAt) > item.ttl {
			delete(c.data, key)
			return nil, false
		}
		return item.value, true
	}

	if time.Since(item.cachedAt) > c.ttl {
		delete(c.data, key)
		return nil, false
	}

	return item.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]cacheItem)
}

// ClearPrefix removes every key starting with prefix.
func (c *Cache) ClearPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}

// ClearExceptPrefixes removes everything that does not start with one of
// the protected prefixes.
func (c *Cache) ClearExceptPrefixes(protected []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.data {
		keep := false
		for _, prefix := range protected {
			if strings.HasPrefix(key, prefix) {
				keep = true
				break
			}
		}
		if !keep {
			delete(c.data, key)
		}
	}
}

// Stats is a point-in-time summary for the admin endpoints.
type Stats struct {
	Items     int            `json:"items"`
	SizeBytes int            `json:"sizeBytes"`
	Prefixes  map[string]int `json:"prefixes"`
}

func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{Prefixes: make(map[string]int)}
	for key, item := range c.data {
		stats.Items++
		stats.SizeBytes += len(item.value)

		if idx := strings.Index(key, ":"); idx > 0 {
			stats.Prefixes[key[:idx+1]]++
		}
	}

	return stats
}

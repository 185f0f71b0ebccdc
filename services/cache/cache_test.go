package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("key", []byte("value"))

	value, exists := c.Get("key")
	assert.True(t, exists)
	assert.Equal(t, []byte("value"), value)

	_, exists = c.Get("missing")
	assert.False(t, exists)
}

func TestCachePerItemTTL(t *testing.T) {
	c := NewCache(time.Minute)

	c.SetWithTTL("short", []byte("value"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, exists := c.Get("short")
	assert.False(t, exists)
}

func TestCacheClearPrefix(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("rate_limit:1", []byte("a"))
	c.Set("rate_limit:2", []byte("b"))
	c.Set("other:1", []byte("c"))

	c.ClearPrefix("rate_limit:")

	_, exists := c.Get("rate_limit:1")
	assert.False(t, exists)
	_, exists = c.Get("other:1")
	assert.True(t, exists)
}

func TestCacheClearExceptPrefixes(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("ai_rate_limit:1", []byte("a"))
	c.Set("session:1", []byte("b"))

	c.ClearExceptPrefixes([]string{"ai_rate_limit:"})

	_, exists := c.Get("ai_rate_limit:1")
	assert.True(t, exists)
	_, exists = c.Get("session:1")
	assert.False(t, exists)
}

func TestCacheStats(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("ai_rate_limit:1", []byte("abc"))
	c.Set("ai_rate_limit:2", []byte("de"))
	c.Set("plain", []byte("f"))

	stats := c.GetStats()
	assert.Equal(t, 3, stats.Items)
	assert.Equal(t, 6, stats.SizeBytes)
	assert.Equal(t, 2, stats.Prefixes["ai_rate_limit:"])
}

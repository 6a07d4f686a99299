package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching with TTL expiry
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a cached report
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a report with the given TTL
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes a cached report
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all cached reports
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}

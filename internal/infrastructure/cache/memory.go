package cache

import (
	"context"
	"sync"
	"time"

	"github.com/snackscan/backend/internal/domain"
)

// cacheItem is a single cached record with its expiration.
type cacheItem struct {
	facts      domain.NutritionFacts
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory nutrition cache with TTL support.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup
// loop.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	go c.cleanupExpired()

	return c
}

// Get retrieves nutrition facts from the cache. Returns a copy so callers
// cannot mutate the stored record.
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.NutritionFacts, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	facts := item.facts
	return &facts, nil
}

// Set stores nutrition facts with a TTL, stamping the cache time.
func (c *MemoryCache) Set(ctx context.Context, key string, facts *domain.NutritionFacts, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := *facts
	stored.CachedAt = time.Now()

	c.data[key] = cacheItem{
		facts:      stored,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes an entry from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Size returns the current number of items in the cache.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// cleanupExpired removes expired entries every 10 minutes.
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

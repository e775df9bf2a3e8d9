package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snackscan/backend/internal/domain"
)

// RedisCache is a nutrition cache backed by Redis, for deployments with
// more than one backend instance.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache connects to Redis at the given URL
// (redis://[user:pass@]host:port/db).
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &RedisCache{rdb: redis.NewClient(opts)}, nil
}

// Get retrieves nutrition facts from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) (*domain.NutritionFacts, error) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var facts domain.NutritionFacts
	if err := json.Unmarshal(payload, &facts); err != nil {
		return nil, fmt.Errorf("redis get: decode: %w", err)
	}

	return &facts, nil
}

// Set stores nutrition facts in Redis with the TTL as key expiry.
func (c *RedisCache) Set(ctx context.Context, key string, facts *domain.NutritionFacts, ttl time.Duration) error {
	stored := *facts
	stored.CachedAt = time.Now()

	payload, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("redis set: encode: %w", err)
	}

	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes an entry from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

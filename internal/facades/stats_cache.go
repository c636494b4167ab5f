package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/akarpov87/job-tracker-api/internal/logger"
)

// StatsSource computes per-status application counts from storage.
type StatsSource interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// Cache is the minimal cache surface the facade needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ErrCacheMiss is returned by a Cache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// StatsCacheFacade serves per-status counts through a cache-aside
// Redis layer. Cache failures degrade to direct storage reads and are
// logged only.
type StatsCacheFacade struct {
	source StatsSource
	cache  Cache
	ttl    time.Duration
}

// NewStatsCacheFacade creates a facade over source with the given cache.
func NewStatsCacheFacade(source StatsSource, cache Cache, ttl time.Duration) *StatsCacheFacade {
	return &StatsCacheFacade{source: source, cache: cache, ttl: ttl}
}

// CountByStatus returns the cached counts when fresh, otherwise reads
// from storage and repopulates the cache.
func (f *StatsCacheFacade) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	key := statsKey(userID)

	if cached, err := f.cache.Get(ctx, key); err == nil {
		counts := map[string]int64{}
		if err := json.Unmarshal([]byte(cached), &counts); err == nil {
			return counts, nil
		}
		logger.Log.Errorw("failed to decode cached stats", "key", key, "err", err)
	} else if !errors.Is(err, ErrCacheMiss) {
		logger.Log.Errorw("stats cache read failed", "key", key, "err", err)
	}

	counts, err := f.source.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(counts); err == nil {
		if err := f.cache.Set(ctx, key, string(encoded), f.ttl); err != nil {
			logger.Log.Errorw("stats cache write failed", "key", key, "err", err)
		}
	}

	return counts, nil
}

func statsKey(userID uuid.UUID) string {
	return fmt.Sprintf("stats:%s", userID)
}

// RedisCache adapts a redis client to the Cache interface.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache creates a RedisCache over the given client.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get returns the value stored at key, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Set stores value at key with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

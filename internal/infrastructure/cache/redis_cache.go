package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisScheduleCache implements port.ScheduleCache on Redis. Entries are
// serialized projection rows keyed by loan fingerprint and projection.
type RedisScheduleCache struct {
	client *redis.Client
}

// NewRedisScheduleCache connects a cache to the Redis instance at addr.
func NewRedisScheduleCache(addr string) *RedisScheduleCache {
	return &RedisScheduleCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the cached value for key. A miss and a Redis error look the
// same to the caller: the value is simply recomputed.
func (c *RedisScheduleCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key for ttl. A non-positive ttl stores without
// expiry.
func (c *RedisScheduleCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Ping verifies connectivity to Redis.
func (c *RedisScheduleCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *RedisScheduleCache) Close() error {
	return c.client.Close()
}

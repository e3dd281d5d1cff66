package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisCache stores page payloads in Redis so multiple catalog instances
// share one upstream cache. Expiry is delegated to Redis.
type RedisCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedisCache(client *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	return payload, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, payload []byte) {
	c.client.Set(ctx, key, payload, c.ttl)
}

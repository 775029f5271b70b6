package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache is a small TTL cache for rendered availability payloads,
// sitting at the edge of the service. The engine itself stays pure; staleness
// is bounded by the TTL alone. A nil *ReportCache is valid and caches
// nothing, so callers never branch on whether caching is configured.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects a report cache to the redis instance at addr.
func New(addr string, ttl time.Duration) *ReportCache {
	return &ReportCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Get returns the cached payload for key, or ok=false on a miss.
// Redis errors degrade to a miss so the dashboard keeps working without it.
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("cache: get %s failed: %v", key, err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload for key with the cache TTL. Failures are logged and
// otherwise ignored.
func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}

// Close releases the underlying redis connection.
func (c *ReportCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProjectionCache is a JSON-backed Redis cache for read-model records of type
// T. Cache misses and serialization problems degrade to "not cached" and
// write failures are logged, never surfaced: the SQL store remains the source
// of truth and a cold cache only costs a database round trip.
type ProjectionCache[T any] struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProjectionCache binds a cache to client. A zero ttl means entries do not
// expire and must be refreshed or invalidated explicitly on every write.
func NewProjectionCache[T any](client *redis.Client, ttl time.Duration) *ProjectionCache[T] {
	return &ProjectionCache[T]{client: client, ttl: ttl}
}

func (c *ProjectionCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false
	}
	return &record, true
}

func (c *ProjectionCache[T]) Set(ctx context.Context, key string, record *T) {
	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("ProjectionCache: marshal error for key %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("ProjectionCache: write error for key %s: %v", key, err)
	}
}

func (c *ProjectionCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Printf("ProjectionCache: delete error for key %s: %v", key, err)
	}
}

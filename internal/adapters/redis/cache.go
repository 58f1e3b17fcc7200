package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"travel_console/internal/adapters/observability"
)

// Cache stores JSON encoded values in redis.
type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Cache) Ping(ctx context.Context) error {
	return errors.Wrap(r.c.Ping(ctx).Err(), "redis ping")
}

func (r *Cache) Close() error { return r.c.Close() }

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "redis get")
	}
	if err := json.Unmarshal(v, dst); err != nil {
		// treat a corrupt entry as a miss
		observability.ObserveCache("redis", "miss")
		return false, errors.Wrap(err, "decode cached value")
	}
	observability.ObserveCache("redis", "hit")
	return true, nil
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode cache value")
	}
	observability.ObserveCache("redis", "set")
	return errors.Wrap(r.c.Set(ctx, key, b, time.Duration(ttlSec)*time.Second).Err(), "redis set")
}

func (r *Cache) Incr(ctx context.Context, key string) (int64, error) {
	observability.ObserveCache("redis", "incr")
	n, err := r.c.Incr(ctx, key).Result()
	return n, errors.Wrap(err, "redis incr")
}


package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rental-agent:"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to addr. Entries expire after ttl; 0 keeps them.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

// Ping checks the connection.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, keyPrefix+key, value, r.ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

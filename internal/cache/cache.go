// Package cache provides a small read-through cache for listing queries.
// Entries carry a TTL and may be tagged; purging a tag drops every key
// written under it, which is how job mutations invalidate cached listings
// before the TTL runs out.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string)
	PurgeTag(ctx context.Context, tag string)
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// RedisCache stores values under their key and records the key in a set per
// tag. Cache failures are logged and treated as misses; the store stays the
// source of truth.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] GET %s: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("[cache] SET %s: %v", key, err)
		return
	}
	for _, tag := range tags {
		if err := c.rdb.SAdd(ctx, tagKey(tag), key).Err(); err != nil {
			log.Printf("[cache] SADD %s: %v", tag, err)
		}
	}
}

func (c *RedisCache) PurgeTag(ctx context.Context, tag string) {
	keys, err := c.rdb.SMembers(ctx, tagKey(tag)).Result()
	if err != nil {
		log.Printf("[cache] SMEMBERS %s: %v", tag, err)
		return
	}
	if len(keys) > 0 {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Printf("[cache] DEL tagged keys: %v", err)
		}
	}
	if err := c.rdb.Del(ctx, tagKey(tag)).Err(); err != nil {
		log.Printf("[cache] DEL %s: %v", tag, err)
	}
}

func tagKey(tag string) string { return "cache:tag:" + tag }

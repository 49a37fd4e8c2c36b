package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// Redis stores entries as <prefix><tag>:<key> so that a tag can be dropped with one SCAN.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (c *Redis) Get(ctx context.Context, tag, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+entryKey(tag, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return data, true, nil
}

func (c *Redis) Set(ctx context.Context, tag, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+entryKey(tag, key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *Redis) InvalidateTag(ctx context.Context, tag string) error {
	pattern := c.prefix + entryKey(tag, "*")

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

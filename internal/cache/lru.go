package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is a per-process expirable LRU. Entries live for the TTL given at
// construction; the ttl argument of Set is capped by it.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *Memory) Get(_ context.Context, tag, key string) ([]byte, bool, error) {
	v, ok := c.lru.Get(entryKey(tag, key))
	return v, ok, nil
}

func (c *Memory) Set(_ context.Context, tag, key string, value []byte, _ time.Duration) error {
	c.lru.Add(entryKey(tag, key), value)
	return nil
}

func (c *Memory) InvalidateTag(_ context.Context, tag string) error {
	prefix := tag + ":"
	for _, k := range c.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.lru.Remove(k)
		}
	}
	return nil
}

func (c *Memory) Len() int { return c.lru.Len() }

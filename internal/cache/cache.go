// Package cache holds the byte-oriented, tag-scoped cache backends used by the
// storefront read path.
package cache

import (
	"errors"
	"fmt"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrUnknownBackend = errors.New("unknown cache backend")

func entryKey(tag, key string) string {
	return fmt.Sprintf("%s:%s", tag, key)
}

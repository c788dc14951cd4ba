// Package localcache is the in-process fallback for deployments without
// Redis: same domain.Cache contract, backed by an LRU with per-item TTLs.
package localcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karlseguin/ccache/v3"

	"stayinubud/internal/adapters/observability"
)

const maxEntries = 1000

type Cache struct {
	c *ccache.Cache[[]byte]
}

func New() *Cache {
	return &Cache{c: ccache.New(ccache.Configure[[]byte]().MaxSize(maxEntries))}
}

// Values round-trip through JSON so cached data is isolated from caller
// mutation, same as the Redis adapter.
func (l *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	item := l.c.Get(key)
	if item == nil || item.Expired() {
		observability.ObserveCache("local", "miss")
		return false, nil
	}
	observability.ObserveCache("local", "hit")
	return true, json.Unmarshal(item.Value(), dst)
}

func (l *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("local", "set")
	l.c.Set(key, b, ttl)
	return nil
}

func (l *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("local", "del")
	l.c.Delete(key)
	return nil
}

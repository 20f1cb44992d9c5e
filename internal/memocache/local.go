// Package memocache memoizes deficiency/efficiency results behind an
// in-process ristretto cache, with an optional redis tier shared across
// service instances.
package memocache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// LocalCache is a TTL-bounded in-process cache for analysis results, keyed
// by hand code.
type LocalCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewLocalCache builds a cache with the given memory budget (bytes) and
// default entry TTL.
func NewLocalCache(maxCostBytes int64, ttl time.Duration) (*LocalCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("memocache: creating local cache: %w", err)
	}
	return &LocalCache{cache: cache, ttl: ttl}, nil
}

func (c *LocalCache) Set(key string, value any) bool {
	cost := int64(1)
	if b, ok := value.([]byte); ok {
		cost = int64(len(b))
	}
	return c.cache.SetWithTTL(key, value, cost, c.ttl)
}

func (c *LocalCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

func (c *LocalCache) Delete(key string) {
	c.cache.Del(key)
}

func (c *LocalCache) Close() {
	c.cache.Close()
}

package memocache

import (
	"context"
	"encoding/json"
	"fmt"
)

// AnalysisCache is the two-tier cache CalculateEfficiency results sit
// behind: an in-process ristretto tier for hot hand codes, backed by a
// shared redis tier (nil if not configured) so a cache miss on one service
// instance can still hit what another instance already computed.
type AnalysisCache struct {
	local *LocalCache
	redis *RedisCache
}

func NewAnalysisCache(local *LocalCache, redis *RedisCache) *AnalysisCache {
	return &AnalysisCache{local: local, redis: redis}
}

// GetJSON looks up key, unmarshaling into dest on a hit. It reports whether
// dest was populated.
func (a *AnalysisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if raw, ok := a.local.Get(key); ok {
		return true, json.Unmarshal(raw.([]byte), dest)
	}
	if a.redis == nil {
		return false, nil
	}
	raw, err := a.redis.Get(ctx, key)
	if err != nil {
		// a redis miss (including key-not-found) is not an error to the caller
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("memocache: decoding cached value for %q: %w", key, err)
	}
	a.local.Set(key, []byte(raw))
	return true, nil
}

// SetJSON marshals value and writes it to both cache tiers.
func (a *AnalysisCache) SetJSON(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memocache: encoding value for %q: %w", key, err)
	}
	a.local.Set(key, encoded)
	if a.redis == nil {
		return nil
	}
	return a.redis.Set(ctx, key, string(encoded))
}

package memocache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taeho-gwon/mahjong-shanten/internal/appconfig"
)

// RedisCache is the second, shared cache tier: analysis results survive
// here across process restarts and are visible to every service instance.
type RedisCache struct {
	cli *redis.Client
	ttl time.Duration
}

// NewRedisCache connects to the configured redis instance and pings it
// before returning, so a bad connection fails fast at startup rather than
// on the first cache miss.
func NewRedisCache(conf appconfig.RedisConf, ttl time.Duration) (*RedisCache, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:         conf.Addr,
		Password:     conf.Password,
		PoolSize:     conf.PoolSize,
		MinIdleConns: conf.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("memocache: connecting to redis: %w", err)
	}

	return &RedisCache{cli: cli, ttl: ttl}, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.cli.Set(ctx, key, value, c.ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.cli.Get(ctx, key).Result()
}

func (c *RedisCache) Close() error {
	return c.cli.Close()
}

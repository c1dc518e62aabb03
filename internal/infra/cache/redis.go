// Package cache backs the read-model cache with Redis, or with nothing when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix = "villa-booking:"
	scanBatch = 100
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// New picks Redis when an address is configured and a no-op cache otherwise.
func New(cfg config.RedisConfig) shared.Cache {
	if cfg.Addr == "" {
		slog.Info("Read-model cache disabled: REDIS_ADDR not set")
		return Noop{}
	}
	slog.Info("Read-model cache backed by Redis", slog.String("addr", cfg.Addr))
	return NewRedisCache(NewRedisClient(cfg))
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "redis get")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errs.Wrap(err, "decode cached value")
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "encode cached value")
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

// DeletePrefix walks matching keys with SCAN so large keyspaces never block the server.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+prefix+"*", scanBatch).Result()
		if err != nil {
			return errs.Wrap(err, "redis scan")
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return errs.Wrap(err, "redis del")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

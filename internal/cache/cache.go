package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/salonova-app/booking-api/internal/config"
)

// Cache fronts the hot read lists (cities, categories, recommended
// businesses, stats) with Redis. Every method degrades to a miss on
// error, the database stays the source of truth.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func New(cfg *config.Config, log zerolog.Logger) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &Cache{
		rdb: rdb,
		ttl: time.Duration(cfg.CacheTTLSec) * time.Second,
		log: log.With().Str("component", "cache").Logger(),
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// GetJSON loads key into dest, reporting whether it was a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache payload corrupt")
		return false
	}

	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

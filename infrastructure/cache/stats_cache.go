package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventstream/infrastructure/configuration"
	"eventstream/infrastructure/logger"
)

// ErrMiss is returned when the key is absent or the cache is disabled.
var ErrMiss = errors.New("cache: miss")

// StatsCache is a small read-through cache for the statistics rollups. A nil
// *StatsCache is a valid, always-missing cache, so callers never branch on
// whether Redis is configured.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(cfg configuration.RedisClient, ttl time.Duration) *StatsCache {
	if !cfg.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("redis unreachable, statistics cache disabled")
		return nil
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value into dest. ErrMiss on absence.
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil {
		return ErrMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Set stores value under key for the cache TTL. Failures are logged and
// swallowed; a broken cache must not fail the read path.
func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("marshal cache value failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"key":   key,
			"error": err,
		}).Warn("write cache value failed")
	}
}

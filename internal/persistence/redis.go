package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/issue-dashboard/internal/config"
)

// ErrNoSnapshot signals an empty snapshot cache.
var ErrNoSnapshot = errors.New("no cached snapshot")

const snapshotKey = "issue-dashboard:feed:last-good"

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. The
// service runs fine without it; an unreachable cache only disables the
// middle fallback tier.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// SnapshotCache stores the last good raw CSV feed so restarts and feed
// outages fall back to real data before resorting to the demo set.
type SnapshotCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewSnapshotCache wraps a Redis connection as a feed snapshot cache.
func NewSnapshotCache(r *Redis, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{redis: r, ttl: ttl}
}

// Store saves the raw CSV body as the last good feed.
func (c *SnapshotCache) Store(ctx context.Context, csvText string) error {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return errors.New("snapshot cache not configured")
	}
	return c.redis.Client.Set(ctx, snapshotKey, csvText, c.ttl).Err()
}

// Load returns the last good feed, or ErrNoSnapshot when none is cached.
func (c *SnapshotCache) Load(ctx context.Context) (string, error) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return "", errors.New("snapshot cache not configured")
	}
	val, err := c.redis.Client.Get(ctx, snapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSnapshot
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

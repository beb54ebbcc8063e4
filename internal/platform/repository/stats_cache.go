package repository

import (
	"context"
	"errors"
	"time"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/database"
)

// StatsCache channel stats read-through cache
type StatsCache interface {
	// Get hit=false on miss
	Get(ctx context.Context, owner string) (*domain.ChannelStats, bool, error)
	Set(ctx context.Context, owner string, stats *domain.ChannelStats) error
}

type statsCache struct {
	repo database.RedisRepository[domain.ChannelStats]
	ttl  time.Duration
}

// NewStatsCache ttl <= 0 or nil repo disables caching
func NewStatsCache(repo database.RedisRepository[domain.ChannelStats], ttl time.Duration) StatsCache {
	if repo == nil || ttl <= 0 {
		return nopStatsCache{}
	}
	return &statsCache{repo: repo, ttl: ttl}
}

func statsKey(owner string) string {
	return "channel_stats:" + owner
}

func (c *statsCache) Get(ctx context.Context, owner string) (*domain.ChannelStats, bool, error) {
	stats, err := c.repo.Get(ctx, statsKey(owner))
	if errors.Is(err, database.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *statsCache) Set(ctx context.Context, owner string, stats *domain.ChannelStats) error {
	return c.repo.Set(ctx, statsKey(owner), *stats, c.ttl)
}

type nopStatsCache struct{}

func (nopStatsCache) Get(context.Context, string) (*domain.ChannelStats, bool, error) {
	return nil, false, nil
}

func (nopStatsCache) Set(context.Context, string, *domain.ChannelStats) error { return nil }

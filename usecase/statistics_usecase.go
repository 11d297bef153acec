package usecase

import (
	"context"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/cache"
	"eventstream/infrastructure/logger"
)

const (
	userStatsKey  = "stats:users"
	eventStatsKey = "stats:events"
	viewStatsKey  = "stats:views"
)

type IStatisticsUsecase interface {
	UserStats(ctx context.Context) (model.UserStats, error)
	EventStats(ctx context.Context) (model.EventStats, error)
	ViewStats(ctx context.Context) (model.ViewStats, error)
	// Dashboard composes the three rollups into one payload.
	Dashboard(ctx context.Context) (model.DashboardStats, error)
}

type statisticsUsecase struct {
	statsRepo  repository.IStatistics
	statsCache *cache.StatsCache
}

func NewStatisticsUsecase(statsRepo repository.IStatistics, statsCache *cache.StatsCache) IStatisticsUsecase {
	return &statisticsUsecase{statsRepo: statsRepo, statsCache: statsCache}
}

func (u *statisticsUsecase) UserStats(ctx context.Context) (model.UserStats, error) {
	var stats model.UserStats
	if err := u.statsCache.Get(ctx, userStatsKey, &stats); err == nil {
		return stats, nil
	}
	stats, err := u.statsRepo.UserStats(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("user statistics failed")
		return model.UserStats{}, apperr.Store(err).WithCode("USER_STATS_ERROR")
	}
	u.statsCache.Set(ctx, userStatsKey, stats)
	return stats, nil
}

func (u *statisticsUsecase) EventStats(ctx context.Context) (model.EventStats, error) {
	var stats model.EventStats
	if err := u.statsCache.Get(ctx, eventStatsKey, &stats); err == nil {
		return stats, nil
	}
	stats, err := u.statsRepo.EventStats(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("event statistics failed")
		return model.EventStats{}, apperr.Store(err).WithCode("EVENT_STATS_ERROR")
	}
	u.statsCache.Set(ctx, eventStatsKey, stats)
	return stats, nil
}

func (u *statisticsUsecase) ViewStats(ctx context.Context) (model.ViewStats, error) {
	var stats model.ViewStats
	if err := u.statsCache.Get(ctx, viewStatsKey, &stats); err == nil {
		return stats, nil
	}
	stats, err := u.statsRepo.ViewStats(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("view statistics failed")
		return model.ViewStats{}, apperr.Store(err).WithCode("VIEW_STATS_ERROR")
	}
	u.statsCache.Set(ctx, viewStatsKey, stats)
	return stats, nil
}

func (u *statisticsUsecase) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	users, err := u.UserStats(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	events, err := u.EventStats(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	views, err := u.ViewStats(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	return model.DashboardStats{Users: users, Events: events, Views: views}, nil
}

package persistence

import (
	"context"
	"database/sql"

	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
)

// StatisticsRepository answers the read-only rollup queries.
type StatisticsRepository struct{ db *sql.DB }

func NewStatisticsRepository(db *sql.DB) repository.IStatistics {
	return &StatisticsRepository{db}
}

func (r *StatisticsRepository) UserStats(ctx context.Context) (model.UserStats, error) {
	var stats model.UserStats

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE status = $1`, string(model.UserActive)).
		Scan(&stats.TotalActiveUsers)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("active user count failed")
		return model.UserStats{}, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '30 days'`).
		Scan(&stats.NewUsersLast30D)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("new user count failed")
		return model.UserStats{}, err
	}

	byRole, err := r.groupCount(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("users by role failed")
		return model.UserStats{}, err
	}
	stats.UsersByRole = byRole
	return stats, nil
}

func (r *StatisticsRepository) EventStats(ctx context.Context) (model.EventStats, error) {
	var stats model.EventStats

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE status != $1`, string(model.EventCancelled)).
		Scan(&stats.TotalActiveEvents)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("active event count failed")
		return model.EventStats{}, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE created_at >= NOW() - INTERVAL '30 days'`).
		Scan(&stats.NewEventsLast30D)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("new event count failed")
		return model.EventStats{}, err
	}

	byStatus, err := r.groupCount(ctx, `SELECT status, COUNT(*) FROM events GROUP BY status`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("events by status failed")
		return model.EventStats{}, err
	}
	stats.EventsByStatus = byStatus
	return stats, nil
}

func (r *StatisticsRepository) ViewStats(ctx context.Context) (model.ViewStats, error) {
	var stats model.ViewStats

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM video_views WHERE status = $1`, string(model.ViewValid)).
		Scan(&stats.TotalViews)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("total view count failed")
		return model.ViewStats{}, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM video_views WHERE status = $1`, string(model.ViewValid)).
		Scan(&stats.UniqueViewers)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("unique viewer count failed")
		return model.ViewStats{}, err
	}

	trendRows, err := r.db.QueryContext(ctx,
		`SELECT TO_CHAR(viewed_at::date, 'YYYY-MM-DD') AS day, COUNT(*)
FROM video_views
WHERE status = $1 AND viewed_at >= NOW() - INTERVAL '7 days'
GROUP BY day
ORDER BY day`, string(model.ViewValid))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("daily trend query failed")
		return model.ViewStats{}, err
	}
	defer trendRows.Close()
	for trendRows.Next() {
		var d model.DailyViewCount
		if err := trendRows.Scan(&d.Day, &d.Count); err != nil {
			return model.ViewStats{}, err
		}
		stats.DailyTrend = append(stats.DailyTrend, d)
	}
	if err := trendRows.Err(); err != nil {
		return model.ViewStats{}, err
	}

	topRows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.title, COUNT(vv.id) AS view_count
FROM videos v
JOIN video_views vv ON vv.video_id = v.id
WHERE vv.status = $1
GROUP BY v.id, v.title
ORDER BY view_count DESC
LIMIT 5`, string(model.ViewValid))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("top videos query failed")
		return model.ViewStats{}, err
	}
	defer topRows.Close()
	for topRows.Next() {
		var t model.VideoViewCount
		if err := topRows.Scan(&t.VideoID, &t.Title, &t.Count); err != nil {
			return model.ViewStats{}, err
		}
		stats.TopVideos = append(stats.TopVideos, t)
	}
	return stats, topRows.Err()
}

func (r *StatisticsRepository) groupCount(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

package repository

import (
	"context"

	"eventstream/domain/model"
)

// IStatistics serves the read-only rollups. Implementations run plain
// COUNT/GROUP BY queries; there is no write path here.
type IStatistics interface {
	UserStats(ctx context.Context) (model.UserStats, error)
	EventStats(ctx context.Context) (model.EventStats, error)
	ViewStats(ctx context.Context) (model.ViewStats, error)
}

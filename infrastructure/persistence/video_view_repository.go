package persistence

import (
	"context"
	"database/sql"
	"errors"

	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
)

// VideoViewRepository persists the append-only playback facts.
type VideoViewRepository struct{ db *sql.DB }

func NewVideoViewRepository(db *sql.DB) repository.IVideoView { return &VideoViewRepository{db} }

// Record writes exactly one view row or none. The existence probe and the
// insert share a transaction so the video cannot disappear between them.
func (r *VideoViewRepository) Record(ctx context.Context, view model.VideoView) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("begin playback transaction failed")
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists string
	err = tx.QueryRowContext(ctx, `SELECT id FROM videos WHERE id = $1`, view.VideoID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("video existence probe failed")
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO video_views (id, video_id, user_id, viewed_at, status) VALUES ($1, $2, $3, $4, $5)`,
		view.ID, view.VideoID, view.UserID, view.ViewedAt, string(view.Status))
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":    err,
			"video_id": view.VideoID,
		}).Error("insert video view failed")
		return err
	}
	return tx.Commit()
}

func (r *VideoViewRepository) WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT vv.viewed_at,
       v.id, v.title, v.file_path, v.thumbnail_path, v.duration,
       e.id, e.name, e.description, e.start_date, e.end_date
FROM video_views vv
JOIN videos v ON vv.video_id = v.id
LEFT JOIN events e ON v.event_id = e.id
WHERE vv.user_id = $1
ORDER BY vv.viewed_at DESC`, userID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("watch history query failed")
		return nil, err
	}
	defer rows.Close()

	var entries []model.WatchHistoryEntry
	for rows.Next() {
		var entry model.WatchHistoryEntry
		var eID, eName, eDesc sql.NullString
		var eStart, eEnd sql.NullTime
		if err := rows.Scan(&entry.ViewedAt,
			&entry.Video.ID, &entry.Video.Title, &entry.Video.URL, &entry.Video.Thumbnail, &entry.Video.Duration,
			&eID, &eName, &eDesc, &eStart, &eEnd); err != nil {
			return nil, err
		}
		if eID.Valid {
			entry.Event = &model.WatchHistoryEvent{
				ID:          eID.String,
				Name:        eName.String,
				Description: eDesc.String,
				StartDate:   eStart.Time,
				EndDate:     eEnd.Time,
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

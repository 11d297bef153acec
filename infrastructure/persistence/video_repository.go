package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
)

// VideoRepository is the PostgreSQL implementation of repository.IVideo.
type VideoRepository struct{ db *sql.DB }

func NewVideoRepository(db *sql.DB) repository.IVideo { return &VideoRepository{db} }

const videoColumns = `id, title, description, file_path, thumbnail_path, duration, event_id, status, created_by, updated_by, created_at, updated_at`

func scanVideo(scan func(dest ...interface{}) error) (model.Video, error) {
	var v model.Video
	var eventID, createdBy, updatedBy sql.NullString
	err := scan(&v.ID, &v.Title, &v.Description, &v.FilePath, &v.ThumbnailPath, &v.Duration,
		&eventID, &v.Status, &createdBy, &updatedBy, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return model.Video{}, err
	}
	if eventID.Valid {
		v.EventID = &eventID.String
	}
	v.CreatedBy = createdBy.String
	v.UpdatedBy = updatedBy.String
	return v, nil
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) error {
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO videos (id, title, description, file_path, thumbnail_path, duration, event_id, status, created_by, updated_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("prepare insert video failed")
		return err
	}
	defer stmt.Close()

	var eventID interface{}
	if video.EventID != nil {
		eventID = *video.EventID
	}
	_, err = stmt.ExecContext(ctx, video.ID, video.Title, video.Description, video.FilePath,
		video.ThumbnailPath, video.Duration, eventID, string(video.Status), video.CreatedBy, video.UpdatedBy)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"title": video.Title,
		}).Error("insert video failed")
	}
	return err
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (model.Video, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	v, err := scanVideo(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Video{}, repository.ErrNotFound
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("select video by id failed")
		return model.Video{}, err
	}
	return v, nil
}

func (r *VideoRepository) List(ctx context.Context) ([]model.Video, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE status != $1 ORDER BY created_at DESC`,
		string(model.VideoArchived))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("list videos failed")
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		v, err := scanVideo(rows.Scan)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Update keeps the archived guard inside the UPDATE's WHERE clause, same
// shape as EventRepository.Update.
func (r *VideoRepository) Update(ctx context.Context, id string, patch model.VideoPatch, updatedBy string) error {
	sets := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.FilePath != nil {
		add("file_path", *patch.FilePath)
	}
	if patch.ThumbnailPath != nil {
		add("thumbnail_path", *patch.ThumbnailPath)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.EventID != nil {
		add("event_id", *patch.EventID)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	add("updated_by", updatedBy)
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id, string(model.VideoArchived))
	query := fmt.Sprintf("UPDATE videos SET %s WHERE id = $%d AND status != $%d",
		strings.Join(sets, ", "), i, i+1)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("update video failed")
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM videos WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}
	return repository.ErrImmutable
}

func (r *VideoRepository) Archive(ctx context.Context, id, updatedBy string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE videos SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 AND status != $1`,
		string(model.VideoArchived), updatedBy, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("archive video failed")
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

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

// EventRepository is the PostgreSQL implementation of repository.IEvent.
type EventRepository struct{ db *sql.DB }

func NewEventRepository(db *sql.DB) repository.IEvent { return &EventRepository{db} }

// Create inserts the event and, when videoID is given, links that video in
// the same transaction so a half-linked event can never be observed.
func (r *EventRepository) Create(ctx context.Context, event model.Event, videoID *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO events (id, name, description, start_date, end_date, status, created_by, updated_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
		event.ID, event.Name, event.Description, event.StartDate, event.EndDate,
		string(event.Status), event.CreatedBy, event.UpdatedBy)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("insert event failed")
		return err
	}

	if videoID != nil {
		res, err := tx.ExecContext(ctx,
			`UPDATE videos SET event_id = $1, updated_by = $2, updated_at = NOW() WHERE id = $3`,
			event.ID, event.UpdatedBy, *videoID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("link video to event failed")
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}
	}
	return tx.Commit()
}

const eventSelect = `SELECT e.id, e.name, e.description, e.start_date, e.end_date, e.status,
       e.created_by, e.updated_by, e.created_at, e.updated_at,
       v.id, v.title, v.file_path, v.thumbnail_path, v.duration
FROM events e
LEFT JOIN videos v ON v.event_id = e.id`

func scanEventRow(scan func(dest ...interface{}) error) (model.Event, error) {
	var e model.Event
	var createdBy, updatedBy sql.NullString
	var vID, vTitle, vURL, vThumb sql.NullString
	var vDuration sql.NullInt64
	err := scan(&e.ID, &e.Name, &e.Description, &e.StartDate, &e.EndDate, &e.Status,
		&createdBy, &updatedBy, &e.CreatedAt, &e.UpdatedAt,
		&vID, &vTitle, &vURL, &vThumb, &vDuration)
	if err != nil {
		return model.Event{}, err
	}
	e.CreatedBy = createdBy.String
	e.UpdatedBy = updatedBy.String
	if vID.Valid {
		e.Video = &model.EventVideo{
			ID:        vID.String,
			Title:     vTitle.String,
			URL:       vURL.String,
			Thumbnail: vThumb.String,
			Duration:  vDuration.Int64,
		}
	}
	return e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (model.Event, error) {
	row := r.db.QueryRowContext(ctx, eventSelect+` WHERE e.id = $1`, id)
	e, err := scanEventRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, repository.ErrNotFound
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("select event by id failed")
		return model.Event{}, err
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		eventSelect+` WHERE e.status != $1 ORDER BY e.created_at DESC`,
		string(model.EventCancelled))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("list events failed")
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEventRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update folds the cancelled guard into the WHERE clause: a cancelled event
// is never modified, no matter what the caller read moments earlier. When
// zero rows change, a follow-up probe tells ErrNotFound and ErrImmutable
// apart.
func (r *EventRepository) Update(ctx context.Context, id string, patch model.EventPatch, updatedBy string) error {
	sets := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	add("updated_by", updatedBy)
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id, string(model.EventCancelled))
	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d AND status != $%d",
		strings.Join(sets, ", "), i, i+1)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("update event failed")
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
	err = r.db.QueryRowContext(ctx, `SELECT status FROM events WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}
	return repository.ErrImmutable
}

func (r *EventRepository) Cancel(ctx context.Context, id, updatedBy string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 AND status != $1`,
		string(model.EventCancelled), updatedBy, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("cancel event failed")
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

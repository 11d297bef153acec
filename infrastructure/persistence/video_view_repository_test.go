package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventstream/domain/model"
	"eventstream/domain/repository"
)

func TestVideoViewRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoViewRepository(db)
	viewedAt := time.Date(2026, 5, 2, 14, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM videos WHERE id = $1`)).
		WithArgs("v-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("v-1"))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO video_views (id, video_id, user_id, viewed_at, status) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs("vv-1", "v-1", "u-1", viewedAt, "valid").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Record(context.Background(), model.VideoView{
		ID:       "vv-1",
		VideoID:  "v-1",
		UserID:   "u-1",
		ViewedAt: viewedAt,
		Status:   model.ViewValid,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoViewRepository_Record_VideoMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoViewRepository(db)

	// The probe misses, so the transaction rolls back and no view row is
	// ever written.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM videos WHERE id = $1`)).
		WithArgs("v-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err = repo.Record(context.Background(), model.VideoView{
		ID:      "vv-1",
		VideoID: "v-missing",
		UserID:  "u-1",
		Status:  model.ViewValid,
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoViewRepository_WatchHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoViewRepository(db)
	first := time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	start := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

	cols := []string{"viewed_at", "v_id", "v_title", "v_file_path", "v_thumbnail_path", "v_duration",
		"e_id", "e_name", "e_description", "e_start_date", "e_end_date"}
	mock.ExpectQuery(`SELECT vv\.viewed_at`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(first, "v-1", "Opening Night", "/media/v1.mp4", "/media/v1.jpg", int64(5400),
				"e-1", "Summer Gala", "Annual gala", start, start.Add(3*time.Hour)).
			AddRow(second, "v-2", "Standalone Clip", "/media/v2.mp4", "/media/v2.jpg", int64(600),
				nil, nil, nil, nil, nil))

	entries, err := repo.WatchHistory(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "v-1", entries[0].Video.ID)
	require.NotNil(t, entries[0].Event)
	require.Equal(t, "Summer Gala", entries[0].Event.Name)

	require.Equal(t, "v-2", entries[1].Video.ID)
	require.Nil(t, entries[1].Event)
	require.NoError(t, mock.ExpectationsWereMet())
}

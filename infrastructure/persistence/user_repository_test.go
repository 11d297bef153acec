package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventstream/domain/model"
	"eventstream/domain/repository"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO users (id, username, email, password_hash, role, status, created_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`)).
		ExpectExec().
		WithArgs("u-1", "alice", "alice@example.com", "hashed", "viewer", "active", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), model.User{
		ID:           "u-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         model.RoleViewer,
		Status:       model.UserActive,
		CreatedBy:    "u-1",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO users`)).
		ExpectExec().
		WithArgs("u-1", "alice", "alice@example.com", "hashed", "viewer", "active", "u-1").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err = repo.Create(context.Background(), model.User{
		ID:           "u-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         model.RoleViewer,
		Status:       model.UserActive,
		CreatedBy:    "u-1",
	})
	require.ErrorIs(t, err, repository.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT id, username, email, password_hash, role, status, created_by, updated_by, created_at, updated_at FROM users WHERE email = $1`)).
		ExpectQuery().
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "status", "created_by", "updated_by", "created_at", "updated_at"}).
			AddRow("u-1", "alice", "alice@example.com", "hashed", "viewer", "active", "u-1", "u-1", createdAt, createdAt))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, model.RoleViewer, user.Role)
	require.Equal(t, model.UserActive, user.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT`)).
		ExpectQuery().
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "status", "created_by", "updated_by", "created_at", "updated_at"}))

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_SortsColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	// Columns are applied in sorted order so the statement is deterministic.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash = $1, username = $2, updated_by = $3, updated_at = NOW() WHERE id = $4`)).
		WithArgs("newhash", "alice2", "u-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), "u-1", map[string]interface{}{
		"username":      "alice2",
		"password_hash": "newhash",
	}, "u-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET username = $1, updated_by = $2, updated_at = NOW() WHERE id = $3`)).
		WithArgs("ghost", "u-9", "u-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), "u-9", map[string]interface{}{"username": "ghost"}, "u-9")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Deactivate_AlreadyInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	// The status guard lives in the WHERE clause, so a second deactivation
	// matches zero rows.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 AND status = $4`)).
		WithArgs("inactive", "u-1", "u-1", "active").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Deactivate(context.Background(), "u-1", "u-1")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
)

// UserRepository is the PostgreSQL implementation of repository.IUser.
type UserRepository struct{ db *sql.DB }

func NewUserRepository(db *sql.DB) repository.IUser { return &UserRepository{db} }

const userColumns = `id, username, email, password_hash, role, status, created_by, updated_by, created_at, updated_at`

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var createdBy, updatedBy sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&createdBy, &updatedBy, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.CreatedBy = createdBy.String
	u.UpdatedBy = updatedBy.String
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO users (id, username, email, password_hash, role, status, created_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("prepare insert user failed")
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.Username, user.Email, user.PasswordHash,
		string(user.Role), string(user.Status), user.CreatedBy)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return repository.ErrDuplicate
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":    err,
			"username": user.Username,
		}).Error("insert user failed")
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	stmt, err := r.db.PrepareContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("prepare select user by id failed")
		return model.User{}, err
	}
	defer stmt.Close()

	u, err := scanUser(stmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	stmt, err := r.db.PrepareContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("prepare select user by email failed")
		return model.User{}, err
	}
	defer stmt.Close()

	u, err := scanUser(stmt.QueryRowContext(ctx, email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	return u, err
}

// Update applies a sparse column set. Column names come from a closed
// allow-list in the usecase layer, never from request input.
func (r *UserRepository) Update(ctx context.Context, id string, cols map[string]interface{}, updatedBy string) error {
	if len(cols) == 0 {
		return repository.ErrNotFound
	}
	keys := make([]string, 0, len(cols))
	for k := range cols {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys)+2)
	args := make([]interface{}, 0, len(keys)+2)
	i := 1
	for _, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i))
		args = append(args, cols[k])
		i++
	}
	sets = append(sets, fmt.Sprintf("updated_by = $%d", i))
	args = append(args, updatedBy)
	i++
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), i)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return repository.ErrDuplicate
		}
		logger.GetLogger().WithField("error", err).Error("update user failed")
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

// Deactivate flips active to inactive in a single conditional statement so
// two racing calls cannot both report success.
func (r *UserRepository) Deactivate(ctx context.Context, id, updatedBy string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 AND status = $4`,
		string(model.UserInactive), updatedBy, id, string(model.UserActive))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("deactivate user failed")
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

func (r *UserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE status != $1 ORDER BY created_at DESC`,
		string(model.UserInactive))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("list users failed")
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var createdBy, updatedBy sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
			&createdBy, &updatedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.CreatedBy = createdBy.String
		u.UpdatedBy = updatedBy.String
		users = append(users, u)
	}
	return users, rows.Err()
}

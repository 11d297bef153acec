package repository

import (
	"context"

	"eventstream/domain/model"
)

// IUser is the account store. Create surfaces unique-constraint violations
// as ErrDuplicate so callers can answer 409 without parsing driver errors.
type IUser interface {
	Create(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// Update applies a sparse column set; returns ErrNotFound when no row
	// changed.
	Update(ctx context.Context, id string, cols map[string]interface{}, updatedBy string) error
	// Deactivate is a single conditional UPDATE keyed on status=active.
	// ErrNotFound covers both a missing row and an already-inactive one.
	Deactivate(ctx context.Context, id, updatedBy string) error
	// ListActive returns accounts whose status is not inactive, newest first.
	ListActive(ctx context.Context) ([]model.User, error)
}

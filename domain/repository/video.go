package repository

import (
	"context"

	"eventstream/domain/model"
)

type IVideo interface {
	Create(ctx context.Context, video model.Video) error
	GetByID(ctx context.Context, id string) (model.Video, error)
	// List returns non-archived videos, newest first.
	List(ctx context.Context) ([]model.Video, error)
	// Update semantics mirror IEvent.Update: the archived guard lives in the
	// UPDATE's WHERE clause.
	Update(ctx context.Context, id string, patch model.VideoPatch, updatedBy string) error
	// Archive is the delete operation: a conditional status flip to archived.
	Archive(ctx context.Context, id, updatedBy string) error
}

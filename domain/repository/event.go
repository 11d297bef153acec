package repository

import (
	"context"

	"eventstream/domain/model"
)

type IEvent interface {
	// Create persists the event and, when videoID is non-nil, links that
	// video to it in the same transaction.
	Create(ctx context.Context, event model.Event, videoID *string) error
	GetByID(ctx context.Context, id string) (model.Event, error)
	// List returns non-cancelled events, newest first, each with its nested
	// video when one is linked.
	List(ctx context.Context) ([]model.Event, error)
	// Update applies the patch with the terminal-status guard folded into
	// the UPDATE's WHERE clause. ErrImmutable when the row exists but is
	// cancelled; ErrNotFound when it is absent.
	Update(ctx context.Context, id string, patch model.EventPatch, updatedBy string) error
	// Cancel is the delete operation: a conditional status flip to cancelled.
	Cancel(ctx context.Context, id, updatedBy string) error
}

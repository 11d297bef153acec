package repository

import (
	"context"

	"eventstream/domain/model"
)

type IVideoView interface {
	// Record verifies the video exists and inserts the view row inside one
	// transaction, so a concurrent archive/delete cannot slip between the
	// check and the insert. ErrNotFound means no row was written.
	Record(ctx context.Context, view model.VideoView) error
	// WatchHistory joins views to videos and events for one user, most
	// recent first.
	WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error)
}

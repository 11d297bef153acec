package model

import "time"

// Video is a video row. File and thumbnail binaries live in an external
// object store; only their URLs are persisted here.
type Video struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	FilePath      string      `json:"file_path"`
	ThumbnailPath string      `json:"thumbnail_path"`
	Duration      int64       `json:"duration"`
	EventID       *string     `json:"event_id,omitempty"`
	Status        VideoStatus `json:"status"`
	CreatedBy     string      `json:"created_by,omitempty"`
	UpdatedBy     string      `json:"updated_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// VideoPatch is the sparse field set accepted by video update.
type VideoPatch struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	FilePath      *string      `json:"file_path"`
	ThumbnailPath *string      `json:"thumbnail_path"`
	Duration      *int64       `json:"duration"`
	EventID       *string      `json:"event_id"`
	Status        *VideoStatus `json:"status"`
}

func (p VideoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.FilePath == nil &&
		p.ThumbnailPath == nil && p.Duration == nil && p.EventID == nil && p.Status == nil
}

package model

import "time"

// VideoView is an append-only playback fact. Rows are written exactly once
// per playback attempt and never updated or deleted by normal flows; watch
// history and engagement statistics are derived entirely from this table.
type VideoView struct {
	ID       string          `json:"id"`
	VideoID  string          `json:"video_id"`
	UserID   string          `json:"user_id"`
	ViewedAt time.Time       `json:"viewed_at"`
	Status   VideoViewStatus `json:"status"`
}

// WatchHistoryEntry is one row of a user's watch history: the view timestamp
// plus the joined video and (optionally) its event.
type WatchHistoryEntry struct {
	ViewedAt time.Time          `json:"viewed_at"`
	Video    EventVideo         `json:"video"`
	Event    *WatchHistoryEvent `json:"event,omitempty"`
}

type WatchHistoryEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// PlaybackResult is returned to the caller after a successful playback start.
type PlaybackResult struct {
	VideoViewID string `json:"video_view_id"`
	VideoID     string `json:"video_id"`
}

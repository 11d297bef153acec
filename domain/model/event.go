package model

import "time"

// Event is an event row. At most one video points back at an event via
// videos.event_id; when present it is surfaced as the nested Video.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Status      EventStatus `json:"status"`
	CreatedBy   string      `json:"created_by,omitempty"`
	UpdatedBy   string      `json:"updated_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Video       *EventVideo `json:"video,omitempty"`
}

// EventVideo is the nested video summary attached to a listed event.
type EventVideo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Duration  int64  `json:"duration"`
}

// EventPatch is the sparse field set accepted by event update. Nil means
// "leave unchanged".
type EventPatch struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	StartDate   *time.Time   `json:"start_date"`
	EndDate     *time.Time   `json:"end_date"`
	Status      *EventStatus `json:"status"`
}

func (p EventPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.StartDate == nil && p.EndDate == nil && p.Status == nil
}

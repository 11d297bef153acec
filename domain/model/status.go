package model

// Closed status and role vocabularies. Every persisted row carries one of
// these string values; membership is checked at the boundary so the store
// never sees anything outside the set.

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleViewer UserRole = "viewer"
)

func DefaultUserRole() UserRole { return RoleViewer }

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleViewer:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

func DefaultUserStatus() UserStatus { return UserActive }

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive:
		return true
	}
	return false
}

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func DefaultEventStatus() EventStatus { return EventUpcoming }

func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status forbids further updates.
func (s EventStatus) Terminal() bool { return s == EventCancelled }

type VideoStatus string

const (
	VideoDraft     VideoStatus = "draft"
	VideoPublished VideoStatus = "published"
	VideoArchived  VideoStatus = "archived"
)

func DefaultVideoStatus() VideoStatus { return VideoDraft }

func (s VideoStatus) Valid() bool {
	switch s {
	case VideoDraft, VideoPublished, VideoArchived:
		return true
	}
	return false
}

func (s VideoStatus) Terminal() bool { return s == VideoArchived }

type VideoViewStatus string

const (
	ViewValid   VideoViewStatus = "valid"
	ViewInvalid VideoViewStatus = "invalid"
)

func DefaultVideoViewStatus() VideoViewStatus { return ViewValid }

func (s VideoViewStatus) Valid() bool {
	switch s {
	case ViewValid, ViewInvalid:
		return true
	}
	return false
}

package model

import "time"

// Request bodies bound by the HTTP layer.

type ReqRegister struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ReqLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ReqUpdateProfile carries the self-service field set. Pointers distinguish
// "absent" from "set to empty".
type ReqUpdateProfile struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r ReqUpdateProfile) Empty() bool { return r.Username == nil && r.Password == nil }

// ReqAdminCreateUser mirrors ReqRegister but lets an administrator pick the
// role.
type ReqAdminCreateUser struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

type ReqAdminUpdateUser struct {
	Username *string   `json:"username"`
	Password *string   `json:"password"`
	Role     *UserRole `json:"role"`
}

func (r ReqAdminUpdateUser) Empty() bool {
	return r.Username == nil && r.Password == nil && r.Role == nil
}

type ReqCreateEvent struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	// VideoID optionally links an existing video to the new event.
	VideoID *string `json:"video_id"`
}

type ReqCreateVideo struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	FilePath      string  `json:"file_path"`
	ThumbnailPath string  `json:"thumbnail_path"`
	Duration      int64   `json:"duration"`
	EventID       *string `json:"event_id"`
}

package model

// Aggregate rollups served to administrators. All fields are derived with
// read-only queries; none of these structs is ever persisted.

type UserStats struct {
	TotalActiveUsers int64            `json:"total_active_users"`
	NewUsersLast30D  int64            `json:"new_users_last_30_days"`
	UsersByRole      map[string]int64 `json:"users_by_role"`
}

type EventStats struct {
	TotalActiveEvents int64            `json:"total_active_events"`
	NewEventsLast30D  int64            `json:"new_events_last_30_days"`
	EventsByStatus    map[string]int64 `json:"events_by_status"`
}

type ViewStats struct {
	TotalViews    int64            `json:"total_views"`
	UniqueViewers int64            `json:"unique_viewers"`
	DailyTrend    []DailyViewCount `json:"daily_trend_last_7_days"`
	TopVideos     []VideoViewCount `json:"top_videos"`
}

type DailyViewCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type VideoViewCount struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	Count   int64  `json:"view_count"`
}

type DashboardStats struct {
	Users  UserStats  `json:"users"`
	Events EventStats `json:"events"`
	Views  ViewStats  `json:"views"`
}

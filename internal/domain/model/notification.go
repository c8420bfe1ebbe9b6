package model

import "time"

const (
	NotificationKindInfo    = "info"
	NotificationKindSuccess = "success"
	NotificationKindWarning = "warning"
)

// Notification is a user-facing status message produced by background
// processing, e.g. the outcome of post analysis.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

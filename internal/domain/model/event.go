package model

import "time"

type Event struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Title       string    `json:"title"`
	EventType   string    `json:"event_type"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	AIDescribed bool      `json:"ai_described"`
	CreatedAt   time.Time `json:"created_at"`
}

package dto

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

type EventRequest struct {
	Title       string    `json:"title"`
	EventType   string    `json:"event_type"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	AIDescribed bool      `json:"ai_described"`
}

type EventResponse struct {
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

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

type GenerateEventDescriptionRequest struct {
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	Location  string    `json:"location"`
	StartsAt  time.Time `json:"starts_at"`
	Capacity  int       `json:"capacity"`
	Tone      string    `json:"tone"`
}

type GenerateEventDescriptionResponse struct {
	Description string `json:"description"`
}

func NewEventResponse(event model.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		CreatorID:   event.CreatorID,
		Title:       event.Title,
		EventType:   event.EventType,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		Capacity:    event.Capacity,
		Description: event.Description,
		AIDescribed: event.AIDescribed,
		CreatedAt:   event.CreatedAt,
	}
}

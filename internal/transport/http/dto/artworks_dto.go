package dto

import "time"

type GenerateArtworkRequest struct {
	Description string `json:"description"`
	Style       string `json:"style,omitempty"`
}

type GenerateArtworkResponse struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url,omitempty"`
	Prompt    string `json:"prompt"`
}

type SaveArtworkRequest struct {
	CategoryID  int64  `json:"category_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ObjectKey   string `json:"object_key"`
	Tags        string `json:"tags,omitempty"`
}

type ArtworkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CategoryID  int64     `json:"category_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ObjectKey   string    `json:"object_key"`
	URL         string    `json:"url,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	AIGenerated bool      `json:"ai_generated"`
	CreatedAt   time.Time `json:"created_at"`
}

type ArtworkListResponse struct {
	Artworks []ArtworkResponse `json:"artworks"`
}

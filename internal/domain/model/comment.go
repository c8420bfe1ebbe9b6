package model

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id"`
	AuthorID   int64     `json:"author_id"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`

	SentimentScore   *float64              `json:"sentiment_score"`
	SentimentLabel   *enums.SentimentLabel `json:"sentiment_label"`
	IsAppropriate    bool                  `json:"is_appropriate"`
	ModerationReason string                `json:"moderation_reason"`
}

package dto

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID               int64                 `json:"id"`
	PostID           int64                 `json:"post_id"`
	AuthorID         int64                 `json:"author_id"`
	Content          string                `json:"content"`
	DatePosted       time.Time             `json:"date_posted"`
	SentimentScore   *float64              `json:"sentiment_score,omitempty"`
	SentimentLabel   *enums.SentimentLabel `json:"sentiment_label,omitempty"`
	IsAppropriate    bool                  `json:"is_appropriate"`
	ModerationReason string                `json:"moderation_reason,omitempty"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

func NewCommentResponse(comment model.Comment) CommentResponse {
	return CommentResponse{
		ID:               comment.ID,
		PostID:           comment.PostID,
		AuthorID:         comment.AuthorID,
		Content:          comment.Content,
		DatePosted:       comment.DatePosted,
		SentimentScore:   comment.SentimentScore,
		SentimentLabel:   comment.SentimentLabel,
		IsAppropriate:    comment.IsAppropriate,
		ModerationReason: comment.ModerationReason,
	}
}

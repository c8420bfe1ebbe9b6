package dto

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageKey string `json:"image_key,omitempty"`
	Language string `json:"language,omitempty"`
}

type PostResponse struct {
	ID               int64                    `json:"id"`
	AuthorID         int64                    `json:"author_id"`
	Title            string                   `json:"title"`
	Content          string                   `json:"content"`
	ImageKey         string                   `json:"image_key,omitempty"`
	LikesCount       int                      `json:"likes_count"`
	DatePosted       time.Time                `json:"date_posted"`
	SentimentScore   *float64                 `json:"sentiment_score,omitempty"`
	SentimentLabel   *enums.SentimentLabel    `json:"sentiment_label,omitempty"`
	IsAppropriate    bool                     `json:"is_appropriate"`
	ModerationReason string                   `json:"moderation_reason,omitempty"`
	OriginalLanguage enums.Language           `json:"original_language"`
	Translations     map[string]LocalizedText `json:"translations,omitempty"`
}

type LocalizedText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type TranslateRequest struct {
	Language string `json:"language"`
}

type TranslateResponse struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type LikeResponse struct {
	LikesCount int `json:"likes_count"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

func NewPostResponse(post model.Post) PostResponse {
	resp := PostResponse{
		ID:               post.ID,
		AuthorID:         post.AuthorID,
		Title:            post.Title,
		Content:          post.Content,
		ImageKey:         post.ImageKey,
		LikesCount:       post.LikesCount,
		DatePosted:       post.DatePosted,
		SentimentScore:   post.SentimentScore,
		SentimentLabel:   post.SentimentLabel,
		IsAppropriate:    post.IsAppropriate,
		ModerationReason: post.ModerationReason,
		OriginalLanguage: post.OriginalLanguage,
	}
	if len(post.Translations) > 0 {
		resp.Translations = make(map[string]LocalizedText, len(post.Translations))
		for lang, pair := range post.Translations {
			resp.Translations[string(lang)] = LocalizedText{Title: pair.Title, Content: pair.Content}
		}
	}
	return resp
}

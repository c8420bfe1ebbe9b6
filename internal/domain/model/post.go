package model

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

// LocalizedText is one (title, content) pair in a specific language.
type LocalizedText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (t LocalizedText) Empty() bool {
	return t.Title == "" && t.Content == ""
}

type Post struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageKey   string    `json:"image_key"`
	LikesCount int       `json:"likes_count"`
	DatePosted time.Time `json:"date_posted"`

	SentimentScore   *float64              `json:"sentiment_score"`
	SentimentLabel   *enums.SentimentLabel `json:"sentiment_label"`
	IsAppropriate    bool                  `json:"is_appropriate"`
	ModerationReason string                `json:"moderation_reason"`
	ModerationDate   *time.Time            `json:"moderation_date"`

	OriginalLanguage enums.Language `json:"original_language"`
	// Translations holds one pair per language. A missing key means the
	// post has not been translated into that language yet.
	Translations map[enums.Language]LocalizedText `json:"translations"`
}

// Translation returns the cached pair for a language and whether a
// non-empty pair exists.
func (p Post) Translation(lang enums.Language) (LocalizedText, bool) {
	pair, ok := p.Translations[lang]
	if !ok || pair.Empty() {
		return LocalizedText{}, false
	}
	return pair, true
}

func (p *Post) SetTranslation(lang enums.Language, pair LocalizedText) {
	if p.Translations == nil {
		p.Translations = make(map[enums.Language]LocalizedText, 4)
	}
	p.Translations[lang] = pair
}

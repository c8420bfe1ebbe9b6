package ai

import "github.com/Ihebmsaed/Artygen/internal/domain/enums"

// Sentiment is the parsed result of a sentiment analysis call.
type Sentiment struct {
	Score       float64              `json:"score"`
	Label       enums.SentimentLabel `json:"label"`
	Confidence  float64              `json:"confidence"`
	Explanation string               `json:"explanation"`
}

// NeutralSentiment is the documented fallback when no usable signal was
// produced: neutral with zero confidence.
func NeutralSentiment() Sentiment {
	return Sentiment{
		Score:       0,
		Label:       enums.SentimentNeutral,
		Confidence:  0,
		Explanation: "analysis unavailable",
	}
}

// Moderation is the parsed verdict of a content moderation call. It is
// transient: callers flatten it onto the record being moderated.
type Moderation struct {
	IsAppropriate bool           `json:"is_appropriate"`
	Confidence    float64        `json:"confidence"`
	Reason        string         `json:"reason"`
	Categories    []string       `json:"categories"`
	Severity      enums.Severity `json:"severity"`
}

// PermissiveModeration is the fail-open fallback: appropriate with zero
// confidence, distinguishable from a genuine verdict by its confidence.
func PermissiveModeration() Moderation {
	return Moderation{
		IsAppropriate: true,
		Confidence:    0,
		Severity:      enums.SeverityLow,
	}
}

// Translation is one translated (title, content) pair.
type Translation struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Subcategory is one suggested (name, description) pair extracted from a
// free-form model response.
type Subcategory struct {
	Name        string `json:"subcategory"`
	Description string `json:"description"`
}

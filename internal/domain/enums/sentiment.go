package enums

import "strings"

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// ParseSentimentLabel normalizes a label, falling back to neutral for
// anything outside the known set.
func ParseSentimentLabel(value string) SentimentLabel {
	switch SentimentLabel(strings.ToLower(strings.TrimSpace(value))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

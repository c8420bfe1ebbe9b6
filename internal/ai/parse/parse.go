// Package parse extracts structured results from raw model responses.
// Parsers never return errors: malformed input degrades to a documented
// fallback value, and the boolean result tells the caller whether the
// response parsed cleanly or the fallback was used.
package parse

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/Ihebmsaed/Artygen/internal/ai"
	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

const (
	maxSubcategories   = 5
	maxSubcategoryName = 100
	diagnosticExcerpt  = 200
)

// StripFences removes a Markdown code fence wrapper, if present, so fenced
// JSON still parses.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Translation parses a strict-JSON translation response. On failure the
// original title and content are returned unchanged and ok is false.
func Translation(raw, originalTitle, originalContent string) (ai.Translation, bool) {
	fallback := ai.Translation{Title: originalTitle, Content: originalContent}

	var decoded struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(StripFences(raw)), &decoded); err != nil {
		return fallback, false
	}

	result := fallback
	if strings.TrimSpace(decoded.Title) != "" {
		result.Title = decoded.Title
	}
	if strings.TrimSpace(decoded.Content) != "" {
		result.Content = decoded.Content
	}
	return result, true
}

// Sentiment parses a strict-JSON sentiment response. On failure the neutral
// zero-confidence fallback is returned and ok is false.
func Sentiment(raw string) (ai.Sentiment, bool) {
	var decoded struct {
		Score       float64 `json:"score"`
		Label       string  `json:"label"`
		Confidence  float64 `json:"confidence"`
		Explanation string  `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(StripFences(raw)), &decoded); err != nil {
		return ai.NeutralSentiment(), false
	}

	return ai.Sentiment{
		Score:       clamp(decoded.Score, -1, 1),
		Label:       enums.ParseSentimentLabel(decoded.Label),
		Confidence:  clamp(decoded.Confidence, 0, 1),
		Explanation: decoded.Explanation,
	}, true
}

// Moderation parses a strict-JSON moderation response. On failure the
// permissive zero-confidence fallback is returned and ok is false; the
// caller decides whether to fail open or closed on that signal.
func Moderation(raw string) (ai.Moderation, bool) {
	var decoded struct {
		IsAppropriate *bool    `json:"is_appropriate"`
		Confidence    float64  `json:"confidence"`
		Reason        string   `json:"reason"`
		Categories    []string `json:"categories"`
		Severity      string   `json:"severity"`
	}
	if err := json.Unmarshal([]byte(StripFences(raw)), &decoded); err != nil {
		return ai.PermissiveModeration(), false
	}
	if decoded.IsAppropriate == nil {
		return ai.PermissiveModeration(), false
	}

	return ai.Moderation{
		IsAppropriate: *decoded.IsAppropriate,
		Confidence:    clamp(decoded.Confidence, 0, 1),
		Reason:        decoded.Reason,
		Categories:    decoded.Categories,
		Severity:      enums.ParseSeverity(decoded.Severity),
	}, true
}

// preamblePrefixes are lowercase openers of filler lines that models tend to
// put before the actual list.
var preamblePrefixes = []string{"voici", "here", "example", "exemple", "sure", "of course"}

// Subcategories extracts up to five (name, description) pairs from a
// line-oriented model response. If nothing usable is found, a single
// diagnostic pseudo-entry carrying an excerpt of the raw response is
// returned so the caller never sees an empty, silently failed result.
func Subcategories(raw, categoryName string) ([]ai.Subcategory, bool) {
	var accepted []ai.Subcategory

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if hasPreamblePrefix(line) {
			continue
		}

		line = strings.TrimLeft(line, "0123456789.*- ")
		name, description, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		name = strings.TrimSpace(strings.ReplaceAll(name, "*", ""))
		description = strings.TrimSpace(strings.ReplaceAll(description, "*", ""))
		if name == "" || description == "" {
			continue
		}
		// A very long "name" is almost certainly a captured paragraph,
		// not a subcategory.
		if utf8.RuneCountInString(name) >= maxSubcategoryName {
			continue
		}

		accepted = append(accepted, ai.Subcategory{Name: name, Description: description})
		if len(accepted) >= maxSubcategories {
			break
		}
	}

	if len(accepted) == 0 {
		return []ai.Subcategory{{
			Name:        "Unparsed response for " + categoryName,
			Description: excerpt(raw, diagnosticExcerpt),
		}}, false
	}

	return accepted, true
}

func hasPreamblePrefix(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range preamblePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func excerpt(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

type scriptedGenerator struct {
	answers map[string]string
	err     error
}

func (g *scriptedGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	for marker, answer := range g.answers {
		if strings.Contains(prompt, marker) {
			return answer, nil
		}
	}
	return "", errors.New("no scripted answer")
}

func TestAnalyzeHappyPath(t *testing.T) {
	gen := &scriptedGenerator{answers: map[string]string{
		"sentiment": `{"score": 0.8, "label": "positive", "confidence": 0.9, "explanation": "joyful"}`,
		"moderat":   `{"is_appropriate": true, "confidence": 0.95, "reason": "", "categories": [], "severity": "low"}`,
	}}
	svc := NewService(gen, true, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "what a lovely gallery opening")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Degraded {
		t.Fatalf("unexpected degradation: %+v", result)
	}
	if result.Sentiment.Label != enums.SentimentPositive || result.Sentiment.Score != 0.8 {
		t.Fatalf("unexpected sentiment: %+v", result.Sentiment)
	}
	if !result.Moderation.IsAppropriate {
		t.Fatalf("unexpected moderation verdict: %+v", result.Moderation)
	}
}

func TestAnalyzeGatewayDownFailsOpen(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("connection refused")}
	svc := NewService(gen, true, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "some text")
	if err != nil {
		t.Fatalf("analyze must not propagate gateway errors: %v", err)
	}
	if !result.Degraded {
		t.Fatalf("expected degraded result")
	}
	if result.Sentiment.Label != enums.SentimentNeutral || result.Sentiment.Confidence != 0 {
		t.Fatalf("expected neutral sentiment fallback: %+v", result.Sentiment)
	}
	if !result.Moderation.IsAppropriate {
		t.Fatalf("fail-open must keep content visible: %+v", result.Moderation)
	}
}

func TestAnalyzeGatewayDownFailsClosed(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("connection refused")}
	svc := NewService(gen, false, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "some text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Moderation.IsAppropriate {
		t.Fatalf("fail-closed must hold content for review: %+v", result.Moderation)
	}
	if result.Moderation.Confidence != 0 {
		t.Fatalf("fallback verdict must carry zero confidence: %+v", result.Moderation)
	}
}

func TestAnalyzeEmptyTextShortCircuits(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("should not be called")}
	svc := NewService(gen, true, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "   ")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !result.Degraded {
		t.Fatalf("empty text should be a degraded pass")
	}
}

func TestAnalyzeRequiresGenerator(t *testing.T) {
	svc := NewService(nil, true, nil)
	if _, err := svc.Analyze(context.Background(), "text"); err == nil {
		t.Fatalf("expected error for nil generator")
	}
}

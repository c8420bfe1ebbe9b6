package analysis

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/ai"
	"github.com/Ihebmsaed/Artygen/internal/ai/parse"
	"github.com/Ihebmsaed/Artygen/internal/ai/prompt"
)

// TextGenerator is the single-call surface of the text model gateway.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service runs the sentiment and moderation passes over user text.
// Gateway failures never propagate: each pass degrades to its neutral
// fallback so publishing is not blocked by the model being down.
type Service struct {
	generator TextGenerator
	failOpen  bool
	log       *zap.Logger
}

// Result is the combined outcome of one analysis pass.
type Result struct {
	Sentiment  ai.Sentiment
	Moderation ai.Moderation
	// Degraded is set when at least one pass fell back instead of
	// parsing a real model answer.
	Degraded bool
}

func NewService(generator TextGenerator, failOpen bool, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		generator: generator,
		failOpen:  failOpen,
		log:       log,
	}
}

// Analyze runs both passes sequentially. The error return is reserved
// for programmer mistakes (nil generator), not model failures.
func (s *Service) Analyze(ctx context.Context, text string) (Result, error) {
	if s.generator == nil {
		return Result{}, fmt.Errorf("text generator is not configured")
	}
	if strings.TrimSpace(text) == "" {
		return Result{
			Sentiment:  ai.NeutralSentiment(),
			Moderation: s.fallbackModeration(),
			Degraded:   true,
		}, nil
	}

	result := Result{}

	sentiment, ok := s.analyzeSentiment(ctx, text)
	result.Sentiment = sentiment
	if !ok {
		result.Degraded = true
	}

	moderation, ok := s.moderate(ctx, text)
	result.Moderation = moderation
	if !ok {
		result.Degraded = true
	}

	return result, nil
}

func (s *Service) analyzeSentiment(ctx context.Context, text string) (ai.Sentiment, bool) {
	raw, err := s.generator.GenerateText(ctx, prompt.Sentiment(text))
	if err != nil {
		s.log.Warn("sentiment pass failed", zap.Error(err))
		return ai.NeutralSentiment(), false
	}

	sentiment, ok := parse.Sentiment(raw)
	if !ok {
		s.log.Warn("sentiment answer unparseable", zap.Int("raw_len", len(raw)))
	}
	return sentiment, ok
}

func (s *Service) moderate(ctx context.Context, text string) (ai.Moderation, bool) {
	raw, err := s.generator.GenerateText(ctx, prompt.Moderation(text))
	if err != nil {
		s.log.Warn("moderation pass failed", zap.Error(err))
		return s.fallbackModeration(), false
	}

	moderation, ok := parse.Moderation(raw)
	if !ok {
		s.log.Warn("moderation answer unparseable", zap.Int("raw_len", len(raw)))
		return s.fallbackModeration(), false
	}
	return moderation, true
}

// fallbackModeration encodes the fail-open policy: when the verdict is
// unusable, failOpen keeps content visible, otherwise it is held for
// manual review.
func (s *Service) fallbackModeration() ai.Moderation {
	if s.failOpen {
		return ai.PermissiveModeration()
	}
	return ai.Moderation{
		IsAppropriate: false,
		Confidence:    0,
		Reason:        "automatic review unavailable, held for manual check",
	}
}

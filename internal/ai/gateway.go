package ai

import (
	"context"
	"fmt"
)

// TextGenerator produces raw model text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces raw image bytes for a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// DisabledGateway stands in for a gateway whose credentials are absent.
// Every call fails with ErrAuth, so pipeline consumers degrade to their
// fallbacks and explicit endpoints report a configuration problem.
type DisabledGateway struct{}

func (DisabledGateway) GenerateText(context.Context, string) (string, error) {
	return "", fmt.Errorf("text gateway not configured: %w", ErrAuth)
}

func (DisabledGateway) GenerateImage(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("image gateway not configured: %w", ErrAuth)
}

// Package hugging is the gateway to the hosted text-to-image model. A
// prompt goes out as JSON and raw image bytes come back; failures are
// classified into the taxonomy in the ai package.
package hugging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ihebmsaed/Artygen/internal/ai"
)

const (
	DefaultModelURL = "https://api-inference.huggingface.co/models/black-forest-labs/FLUX.1-schnell"

	maxErrorBody = 200
)

type Config struct {
	ModelURL string
	Token    string
}

type Client struct {
	httpClient *http.Client
	modelURL   string
	token      string
}

func NewClient(httpClient *http.Client, cfg Config) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is nil")
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("hugging face token is required")
	}

	modelURL := cfg.ModelURL
	if modelURL == "" {
		modelURL = DefaultModelURL
	}

	return &Client{
		httpClient: httpClient,
		modelURL:   modelURL,
		token:      cfg.Token,
	}, nil
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// GenerateImage sends the combined prompt to the image model and returns the
// raw image bytes. A 503 from the inference endpoint means the model is
// still loading and maps to ai.ErrModelLoading so the caller can suggest a
// retry.
func (c *Client) GenerateImage(ctx context.Context, promptText string) ([]byte, error) {
	if strings.TrimSpace(promptText) == "" {
		return nil, fmt.Errorf("prompt is empty")
	}

	payload, err := json.Marshal(inferenceRequest{Inputs: promptText})
	if err != nil {
		return nil, fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ai.ClassifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ai.ClassifyTransport(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ai.ClassifyStatus(resp.StatusCode, truncate(string(body), maxErrorBody))
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty image response", ai.ErrUpstream)
	}

	return body, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Package gemini is the gateway to the hosted text generation model. It
// sends a prompt over the REST API and returns the raw response text;
// failures are classified into the taxonomy in the ai package so callers
// can surface actionable messages.
package gemini

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
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"

	// Upstream error bodies are truncated to this length before they are
	// folded into an error message.
	maxErrorBody = 200
)

// GenerationConfig carries the static generation parameters sent with every
// request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 1024,
	}
}

type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Params  GenerationConfig
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	params     GenerationConfig
}

// NewClient builds a gateway client. The client is safe for concurrent use
// and meant to be constructed once and injected wherever text generation is
// needed.
func NewClient(httpClient *http.Client, cfg Config) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	params := cfg.Params
	if params == (GenerationConfig{}) {
		params = DefaultGenerationConfig()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		model:      model,
		apiKey:     cfg.APIKey,
		params:     params,
	}, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends a prompt and returns the raw text of the first
// candidate. No retries are performed; classification of the failure is
// left to errors.Is against the ai package sentinels.
func (c *Client) GenerateText(ctx context.Context, promptText string) (string, error) {
	if strings.TrimSpace(promptText) == "" {
		return "", fmt.Errorf("prompt is empty")
	}

	payload, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: promptText}}}},
		GenerationConfig: c.params,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", ai.ClassifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ai.ClassifyTransport(err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", ai.ClassifyStatus(resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("%w: decode generate response: %v", ai.ErrUpstream, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: response contains no candidates", ai.ErrUpstream)
	}

	var text strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return strings.TrimSpace(text.String()), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

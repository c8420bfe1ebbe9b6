package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ihebmsaed/Artygen/internal/ai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	client, err := NewClient(srv.Client(), Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
	if err != nil {
		srv.Close()
		t.Fatalf("new client: %v", err)
	}
	return client, srv
}

func TestGenerateTextReturnsFirstCandidate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "generated "},
					{"text": "text"},
				}}},
			},
		})
	})
	defer srv.Close()

	out, err := client.GenerateText(context.Background(), "write something")
	if err != nil {
		t.Fatalf("generate text: %v", err)
	}
	if out != "generated text" {
		t.Fatalf("unexpected output: %q", out)
	}
	if gotPath != "/models/"+DefaultModel+":generateContent" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header not set")
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "write something" {
		t.Fatalf("prompt not sent: %+v", gotBody)
	}
	if gotBody.GenerationConfig.MaxOutputTokens != DefaultGenerationConfig().MaxOutputTokens {
		t.Fatalf("generation config not sent: %+v", gotBody.GenerationConfig)
	}
}

func TestGenerateTextClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusUnauthorized, want: ai.ErrAuth},
		{status: http.StatusForbidden, want: ai.ErrAuth},
		{status: http.StatusTooManyRequests, want: ai.ErrQuota},
		{status: http.StatusServiceUnavailable, want: ai.ErrModelLoading},
		{status: http.StatusNotFound, want: ai.ErrUpstream},
		{status: http.StatusInternalServerError, want: ai.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "upstream detail", tt.status)
			})
			defer srv.Close()

			_, err := client.GenerateText(context.Background(), "prompt")
			if !errors.Is(err, tt.want) {
				t.Fatalf("status %d: got %v, want %v", tt.status, err, tt.want)
			}
		})
	}
}

func TestGenerateTextTimeout(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GenerateText(ctx, "prompt")
	if !errors.Is(err, ai.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestGenerateTextConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(srv.Client(), Config{BaseURL: srv.URL, APIKey: "k"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	srv.Close() // nothing listening anymore

	_, err = client.GenerateText(context.Background(), "prompt")
	if !errors.Is(err, ai.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})
	defer srv.Close()

	_, err := client.GenerateText(context.Background(), "prompt")
	if !errors.Is(err, ai.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(http.DefaultClient, Config{}); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient(nil, Config{APIKey: "k"}); err == nil {
		t.Fatalf("expected error for nil http client")
	}
}

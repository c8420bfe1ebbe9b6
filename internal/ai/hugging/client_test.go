package hugging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ihebmsaed/Artygen/internal/ai"
)

func TestGenerateImageReturnsBytes(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	var gotAuth string
	var gotBody inferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write(image)
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), Config{ModelURL: srv.URL, Token: "hf-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	out, err := client.GenerateImage(context.Background(), "a cat, oil painting style")
	if err != nil {
		t.Fatalf("generate image: %v", err)
	}
	if !bytes.Equal(out, image) {
		t.Fatalf("image bytes altered in transit")
	}
	if gotAuth != "Bearer hf-token" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotBody.Inputs != "a cat, oil painting style" {
		t.Fatalf("prompt not sent: %+v", gotBody)
	}
}

func TestGenerateImageClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusUnauthorized, want: ai.ErrAuth},
		{status: http.StatusServiceUnavailable, want: ai.ErrModelLoading},
		{status: http.StatusTooManyRequests, want: ai.ErrQuota},
		{status: http.StatusNotFound, want: ai.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "detail", tt.status)
			}))
			defer srv.Close()

			client, err := NewClient(srv.Client(), Config{ModelURL: srv.URL, Token: "t"})
			if err != nil {
				t.Fatalf("new client: %v", err)
			}

			_, err = client.GenerateImage(context.Background(), "prompt")
			if !errors.Is(err, tt.want) {
				t.Fatalf("status %d: got %v, want %v", tt.status, err, tt.want)
			}
		})
	}
}

func TestGenerateImageRejectsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), Config{ModelURL: srv.URL, Token: "t"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.GenerateImage(context.Background(), "prompt")
	if !errors.Is(err, ai.ErrUpstream) {
		t.Fatalf("expected ErrUpstream for empty body, got %v", err)
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient(http.DefaultClient, Config{}); err == nil {
		t.Fatalf("expected error for missing token")
	}
}

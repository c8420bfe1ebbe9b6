package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Ihebmsaed/Artygen/internal/ai"
)

func TestWriteAIErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"auth", fmt.Errorf("gateway: %w", ai.ErrAuth), http.StatusBadGateway, "AI_AUTH"},
		{"quota", ai.ErrQuota, http.StatusTooManyRequests, "AI_QUOTA"},
		{"loading", ai.ErrModelLoading, http.StatusServiceUnavailable, "AI_MODEL_LOADING"},
		{"timeout", ai.ErrTimeout, http.StatusGatewayTimeout, "AI_TIMEOUT"},
		{"connection", ai.ErrConnection, http.StatusBadGateway, "AI_UPSTREAM"},
		{"upstream", ai.ErrUpstream, http.StatusBadGateway, "AI_UPSTREAM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			if !writeAIError(rr, tc.err) {
				t.Fatalf("expected %v to be handled as an ai error", tc.err)
			}
			if rr.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got %d want %d", rr.Code, tc.wantStatus)
			}
			var body struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Fatalf("unexpected code: got %q want %q", body.Code, tc.wantCode)
			}
		})
	}
}

func TestWriteAIErrorIgnoresOtherErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	if writeAIError(rr, fmt.Errorf("plain database failure")) {
		t.Fatal("non-ai error must not be handled")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("handler must not write anything, got status %d", rr.Code)
	}
}

func TestURLID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/posts/42", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "42")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	id, ok := urlID(req, "id")
	if !ok || id != 42 {
		t.Fatalf("unexpected result: id=%d ok=%v", id, ok)
	}
}

func TestURLIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+raw, nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

		if _, ok := urlID(req, "id"); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().Handle(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

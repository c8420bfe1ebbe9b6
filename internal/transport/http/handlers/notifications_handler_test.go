package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
)

type stubNotificationLister struct {
	gotUserID int64
	gotLimit  int
	items     []model.Notification
}

func (s *stubNotificationLister) ListByUser(_ context.Context, userID int64, limit int) ([]model.Notification, error) {
	s.gotUserID = userID
	s.gotLimit = limit
	return s.items, nil
}

func TestNotificationsListRequiresAuth(t *testing.T) {
	h := NewNotificationsHandler(&stubNotificationLister{})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestNotificationsListScopedToCaller(t *testing.T) {
	store := &stubNotificationLister{items: []model.Notification{
		{ID: 1, UserID: 7, Kind: model.NotificationKindSuccess, Message: "post published", CreatedAt: time.Now()},
	}}
	h := NewNotificationsHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	req = req.WithContext(authsvc.WithIdentity(req.Context(), authsvc.Identity{UserID: 7, SID: "sid", Role: "user"}))

	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rr.Code, rr.Body.String())
	}
	if store.gotUserID != 7 {
		t.Fatalf("listed notifications for user %d, want 7", store.gotUserID)
	}
	if store.gotLimit != 50 {
		t.Fatalf("unexpected default limit: %d", store.gotLimit)
	}

	var body struct {
		Notifications []struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Notifications) != 1 || body.Notifications[0].Kind != model.NotificationKindSuccess {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

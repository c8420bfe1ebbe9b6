package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
)

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]authsvc.SessionRecord
	refresh  map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		sessions: make(map[string]authsvc.SessionRecord),
		refresh:  make(map[string]string),
	}
}

func (f *fakeSessions) Create(_ context.Context, session authsvc.SessionRecord, refreshToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.SID] = session
	f.refresh[refreshToken] = session.SID
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context, sid string) (authsvc.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sid]
	if !ok {
		return authsvc.SessionRecord{}, authsvc.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessions) GetByRefreshToken(_ context.Context, refreshToken string) (authsvc.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sid, ok := f.refresh[refreshToken]
	if !ok {
		return authsvc.SessionRecord{}, authsvc.ErrRefreshNotFound
	}
	return f.sessions[sid], nil
}

func (f *fakeSessions) RotateRefresh(_ context.Context, sid, oldToken, newToken string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.refresh, oldToken)
	f.refresh[newToken] = sid
	return nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, sid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sid)
	return nil
}

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]model.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]model.User)}
}

func (f *fakeUsers) Create(_ context.Context, user model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byEmail[email]
	if !ok {
		return model.User{}, errors.New("not found")
	}
	return user, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return model.User{}, errors.New("not found")
}

type failingBios struct {
	calls int
}

func (b *failingBios) GenerateBio(context.Context, int64, enums.Tone, enums.Language) (string, error) {
	b.calls++
	return "", errors.New("gateway down")
}

type recordingNotifier struct {
	notifications []model.Notification
}

func (n *recordingNotifier) Create(_ context.Context, notification model.Notification) error {
	n.notifications = append(n.notifications, notification)
	return nil
}

func newTestAuthService() *authsvc.Service {
	jwt := authsvc.NewJWTManager("test-secret", time.Minute)
	return authsvc.NewService(jwt, newFakeSessions(), newFakeUsers(), 24*time.Hour)
}

func TestRegisterSurvivesBioGenerationFailure(t *testing.T) {
	h := NewAuthHandler(newTestAuthService())
	bios := &failingBios{}
	notifier := &recordingNotifier{}
	h.AttachBioGeneration(bios, notifier)

	body := `{"username":"leila","email":"leila@example.com","password":"longenough","generate_bio":true,"bio_tone":"creative"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d body=%s", rr.Code, rr.Body.String())
	}
	if bios.calls != 1 {
		t.Fatalf("expected one bio generation attempt, got %d", bios.calls)
	}
	if len(notifier.notifications) != 1 || notifier.notifications[0].Kind != model.NotificationKindWarning {
		t.Fatalf("expected a warning notification, got %+v", notifier.notifications)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		Me          struct {
			Email string `json:"email"`
		} `json:"me"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.AccessToken == "" || payload.Me.Email != "leila@example.com" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	h := NewAuthHandler(newTestAuthService())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"unknown_field":1}`))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusBadRequest)
	}
}

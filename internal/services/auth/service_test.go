package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
	redrepo "github.com/Ihebmsaed/Artygen/internal/repo/redis"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
)

func TestRegisterThenLogin(t *testing.T) {
	svc, cleanup := newAuthServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	registered, err := svc.Register(ctx, authsvc.RegisterInput{
		Username: "claire",
		Email:    "Claire@Example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Me.Email != "claire@example.com" {
		t.Fatalf("email not normalized: %q", registered.Me.Email)
	}
	if registered.AccessToken == "" || registered.RefreshToken == "" {
		t.Fatalf("tokens not issued: %+v", registered)
	}

	loggedIn, err := svc.Login(ctx, "claire@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.Me.ID != registered.Me.ID {
		t.Fatalf("login resolved a different user")
	}

	if _, err := svc.Login(ctx, "claire@example.com", "wrong"); !errors.Is(err, authsvc.ErrInvalidCredentials) {
		t.Fatalf("wrong password should fail with ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, cleanup := newAuthServiceForTest(t)
	defer cleanup()

	tests := []struct {
		name  string
		input authsvc.RegisterInput
	}{
		{name: "no_username", input: authsvc.RegisterInput{Email: "a@b.com", Password: "longenough"}},
		{name: "bad_email", input: authsvc.RegisterInput{Username: "u", Email: "not-an-email", Password: "longenough"}},
		{name: "short_password", input: authsvc.RegisterInput{Username: "u", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tt.input); !errors.Is(err, authsvc.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, cleanup := newAuthServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	input := authsvc.RegisterInput{Username: "first", Email: "dup@example.com", Password: "longenough"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("register: %v", err)
	}

	input.Username = "second"
	if _, err := svc.Register(ctx, input); !errors.Is(err, authsvc.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	svc, cleanup := newAuthServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	loginRes, err := svc.Register(ctx, authsvc.RegisterInput{
		Username: "rot", Email: "rot@example.com", Password: "longenough",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshRes, err := svc.Refresh(ctx, loginRes.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshRes.RefreshToken == loginRes.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}

	if _, err := svc.Refresh(ctx, loginRes.RefreshToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("old refresh token should be unauthorized, got err=%v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, refreshRes.AccessToken); err != nil {
		t.Fatalf("new access token validation failed: %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, cleanup := newAuthServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	loginRes, err := svc.Register(ctx, authsvc.RegisterInput{
		Username: "bye", Email: "bye@example.com", Password: "longenough",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	claims, err := svc.ValidateAccessToken(ctx, loginRes.AccessToken)
	if err != nil {
		t.Fatalf("validate access token before logout: %v", err)
	}

	if err := svc.Logout(ctx, claims.SID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, loginRes.AccessToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("access token should be unauthorized after logout, got err=%v", err)
	}
}

func newAuthServiceForTest(t *testing.T) (*authsvc.Service, func()) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	sessions := redrepo.NewSessionRepo(client)
	jwtManager := authsvc.NewJWTManager("test-secret", 15*time.Minute)
	svc := authsvc.NewService(jwtManager, sessions, newMemoryUsers(), 45*24*time.Hour)

	cleanup := func() {
		_ = client.Close()
		mini.Close()
	}
	return svc, cleanup
}

type memoryUsers struct {
	byEmail map[string]model.User
	nextID  int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]model.User), nextID: 1}
}

func (m *memoryUsers) Create(_ context.Context, user model.User) (model.User, error) {
	key := strings.ToLower(user.Email)
	if _, ok := m.byEmail[key]; ok {
		return model.User{}, postgres.ErrEmailTaken
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.byEmail[key] = user
	return user, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (model.User, error) {
	user, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return model.User{}, postgres.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (model.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return model.User{}, postgres.ErrUserNotFound
}

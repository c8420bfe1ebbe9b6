package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type BioGenerator interface {
	GenerateBio(ctx context.Context, userID int64, tone enums.Tone, language enums.Language) (string, error)
}

type Notifier interface {
	Create(ctx context.Context, notification model.Notification) error
}

type AuthHandler struct {
	service  *authsvc.Service
	bios     BioGenerator
	notifier Notifier
}

func NewAuthHandler(service *authsvc.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// AttachBioGeneration enables the optional bio draft at registration.
// A failed draft never fails the registration; the new user gets a
// warning notification instead.
func (h *AuthHandler) AttachBioGeneration(bios BioGenerator, notifier Notifier) {
	h.bios = bios
	h.notifier = notifier
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	res, err := h.service.Register(r.Context(), authsvc.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleAuthError(w, err)
		return
	}

	if req.GenerateBio {
		h.generateInitialBio(r.Context(), res.Me.ID, req.BioTone)
	}

	httperrors.Write(w, http.StatusCreated, tokensResponse(res))
}

func (h *AuthHandler) generateInitialBio(ctx context.Context, userID int64, tone string) {
	if h.bios == nil {
		return
	}
	if _, err := h.bios.GenerateBio(ctx, userID, enums.ParseTone(tone), enums.DefaultLanguage); err == nil {
		return
	}
	if h.notifier != nil {
		_ = h.notifier.Create(ctx, model.Notification{
			UserID:  userID,
			Kind:    model.NotificationKindWarning,
			Message: "your bio could not be generated, try again from your profile",
		})
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, tokensResponse(res))
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	var req dto.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	res, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, tokensResponse(res))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), identity.SID); err != nil {
		handleAuthError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LogoutResponse{OK: true})
}

func tokensResponse(res authsvc.AuthResult) dto.AuthTokensResponse {
	return dto.AuthTokensResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresInSec: maxInt64(0, int64(time.Until(res.AccessExpires).Seconds())),
		Me: dto.AuthMeResponse{
			ID:       res.Me.ID,
			Username: res.Me.Username,
			Email:    res.Me.Email,
			Role:     res.Me.Role,
		},
	}
}

func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authsvc.ErrInvalidInput):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, authsvc.ErrEmailTaken):
		httperrors.Write(w, http.StatusConflict, httperrors.APIError{
			Code: "EMAIL_TAKEN", Message: "email is already registered",
		})
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		writeUnauthorized(w, "INVALID_CREDENTIALS", "email or password is incorrect")
	case errors.Is(err, authsvc.ErrUnauthorized),
		errors.Is(err, authsvc.ErrSessionNotFound),
		errors.Is(err, authsvc.ErrRefreshNotFound):
		writeUnauthorized(w, "UNAUTHORIZED", "authentication failed")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}

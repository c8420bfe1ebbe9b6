package handlers

import (
	"errors"
	"net/http"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	profilesvc "github.com/Ihebmsaed/Artygen/internal/services/profiles"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type ProfileHandler struct {
	service *profilesvc.Service
}

func NewProfileHandler(service *profilesvc.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	profile, err := h.service.Get(r.Context(), identity.UserID)
	if err != nil {
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, profileResponse(profile))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	profile, err := h.service.Update(r.Context(), identity.UserID, profilesvc.UpdateInput{
		Bio:          req.Bio,
		ArtStyle:     req.ArtStyle,
		ArtInterests: req.ArtInterests,
		PhotoKey:     req.PhotoKey,
		Birthdate:    req.Birthdate,
	})
	if err != nil {
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, profileResponse(profile))
}

func (h *ProfileHandler) GenerateBio(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.GenerateBioRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	bio, err := h.service.GenerateBio(r.Context(), identity.UserID,
		enums.Tone(req.Tone), enums.Language(req.Language))
	if err != nil {
		if writeAIError(w, err) {
			return
		}
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.GenerateBioResponse{Bio: bio})
}

func (h *ProfileHandler) RegenerateBio(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.RegenerateBioRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	drafts, err := h.service.RegenerateBio(r.Context(), identity.UserID,
		enums.Tone(req.CurrentTone), enums.Language(req.Language))
	if err != nil {
		if writeAIError(w, err) {
			return
		}
		handleProfileError(w, err)
		return
	}

	resp := dto.RegenerateBioResponse{Drafts: make([]dto.BioDraftResponse, 0, len(drafts))}
	for _, draft := range drafts {
		resp.Drafts = append(resp.Drafts, dto.BioDraftResponse{
			Tone: string(draft.Tone),
			Bio:  draft.Bio,
		})
	}

	httperrors.Write(w, http.StatusOK, resp)
}

func profileResponse(profile model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:       profile.UserID,
		Bio:          profile.Bio,
		ArtStyle:     profile.ArtStyle,
		ArtInterests: profile.ArtInterests,
		BioGenerated: profile.BioGenerated,
		PhotoKey:     profile.PhotoKey,
		Birthdate:    profile.Birthdate,
	}
}

func handleProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profilesvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid profile request")
	case errors.Is(err, profilesvc.ErrGeneration):
		httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
			Code: "AI_EMPTY_RESULT", Message: "model returned an empty bio",
		})
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process profile request")
	}
}

package handlers

import (
	"errors"
	"net/http"

	artworksvc "github.com/Ihebmsaed/Artygen/internal/services/artworks"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type ArtworksHandler struct {
	service *artworksvc.Service
}

func NewArtworksHandler(service *artworksvc.Service) *ArtworksHandler {
	return &ArtworksHandler{service: service}
}

func (h *ArtworksHandler) Generate(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTWORKS_SERVICE_UNAVAILABLE", "artworks service is unavailable")
		return
	}

	var req dto.GenerateArtworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	generated, err := h.service.Generate(r.Context(), identity.UserID, req.Description, req.Style)
	if err != nil {
		var rateErr *artworksvc.RateLimitError
		if errors.As(err, &rateErr) {
			httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitError{
				Code:          "GENERATION_RATE_LIMITED",
				Message:       "too many generation requests, slow down",
				RetryAfterSec: rateErr.RetryAfterSec,
			})
			return
		}
		if writeAIError(w, err) {
			return
		}
		handleArtworksError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.GenerateArtworkResponse{
		ObjectKey: generated.ObjectKey,
		URL:       generated.URL,
		Prompt:    generated.Prompt,
	})
}

func (h *ArtworksHandler) Save(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTWORKS_SERVICE_UNAVAILABLE", "artworks service is unavailable")
		return
	}

	var req dto.SaveArtworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	artwork, err := h.service.Save(r.Context(), identity.UserID, artworksvc.SaveInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		ObjectKey:   req.ObjectKey,
		Tags:        req.Tags,
	})
	if err != nil {
		handleArtworksError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.ArtworkResponse{
		ID:          artwork.ID,
		UserID:      artwork.UserID,
		CategoryID:  artwork.CategoryID,
		Title:       artwork.Title,
		Description: artwork.Description,
		ObjectKey:   artwork.ObjectKey,
		Tags:        artwork.Tags,
		AIGenerated: artwork.AIGenerated,
		CreatedAt:   artwork.CreatedAt,
	})
}

func (h *ArtworksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTWORKS_SERVICE_UNAVAILABLE", "artworks service is unavailable")
		return
	}
	artworkID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid artwork id")
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, artworkID); err != nil {
		handleArtworksError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ArtworksHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "ARTWORKS_SERVICE_UNAVAILABLE", "artworks service is unavailable")
		return
	}

	views, err := h.service.List(r.Context(), queryInt(r, "limit", "20"), queryInt(r, "offset", "0"))
	if err != nil {
		handleArtworksError(w, err)
		return
	}

	items := make([]dto.ArtworkResponse, 0, len(views))
	for _, view := range views {
		items = append(items, dto.ArtworkResponse{
			ID:          view.ID,
			UserID:      view.UserID,
			CategoryID:  view.CategoryID,
			Title:       view.Title,
			Description: view.Description,
			ObjectKey:   view.ObjectKey,
			URL:         view.URL,
			Tags:        view.Tags,
			AIGenerated: view.AIGenerated,
			CreatedAt:   view.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.ArtworkListResponse{Artworks: items})
}

func handleArtworksError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, artworksvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid artwork request")
	case errors.Is(err, artworksvc.ErrArtworkNotFound):
		writeNotFound(w, "ARTWORK_NOT_FOUND", "artwork not found")
	case errors.Is(err, artworksvc.ErrForbidden):
		writeForbidden(w, "FORBIDDEN", "not the artwork owner")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process artwork request")
	}
}

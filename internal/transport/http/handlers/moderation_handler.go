package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	moderationsvc "github.com/Ihebmsaed/Artygen/internal/services/moderation"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

// ModerationHandler serves the manual review queue. Routes mounted
// under it are admin-only; role checks happen in middleware.
type ModerationHandler struct {
	service *moderationsvc.Service
}

func NewModerationHandler(service *moderationsvc.Service) *ModerationHandler {
	return &ModerationHandler{service: service}
}

func (h *ModerationHandler) Flagged(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}

	queue, err := h.service.Flagged(r.Context())
	if err != nil {
		handleModerationError(w, err)
		return
	}

	posts := make([]dto.PostResponse, 0, len(queue.Posts))
	for _, post := range queue.Posts {
		posts = append(posts, dto.NewPostResponse(post))
	}
	comments := make([]dto.CommentResponse, 0, len(queue.Comments))
	for _, comment := range queue.Comments {
		comments = append(comments, dto.NewCommentResponse(comment))
	}

	httperrors.Write(w, http.StatusOK, dto.ModerationQueueResponse{
		Posts:    posts,
		Comments: comments,
	})
}

func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid content id")
		return
	}

	if err := h.service.Approve(r.Context(), chi.URLParam(r, "kind"), id); err != nil {
		handleModerationError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ApproveResponse{OK: true})
}

func handleModerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, moderationsvc.ErrValidation), errors.Is(err, moderationsvc.ErrUnknownKind):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid moderation request")
	case errors.Is(err, moderationsvc.ErrNotFound):
		writeNotFound(w, "FLAGGED_NOT_FOUND", "flagged item not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process moderation request")
	}
}

package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	commentsvc "github.com/Ihebmsaed/Artygen/internal/services/comments"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type CommentsHandler struct {
	service *commentsvc.Service
}

func NewCommentsHandler(service *commentsvc.Service) *CommentsHandler {
	return &CommentsHandler{service: service}
}

func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "COMMENTS_SERVICE_UNAVAILABLE", "comments service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	var req dto.CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	comment, err := h.service.Create(r.Context(), postID, identity.UserID, req.Content)
	if err != nil {
		handleCommentsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewCommentResponse(comment))
}

func (h *CommentsHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "COMMENTS_SERVICE_UNAVAILABLE", "comments service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	comments, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		handleCommentsError(w, err)
		return
	}

	items := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, dto.NewCommentResponse(comment))
	}

	httperrors.Write(w, http.StatusOK, dto.CommentListResponse{Comments: items})
}

func handleCommentsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commentsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid comment request")
	case errors.Is(err, commentsvc.ErrPostNotFound):
		writeNotFound(w, "POST_NOT_FOUND", "post not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process comment request")
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	postsvc "github.com/Ihebmsaed/Artygen/internal/services/posts"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type PostsHandler struct {
	service *postsvc.Service
}

func NewPostsHandler(service *postsvc.Service) *PostsHandler {
	return &PostsHandler{service: service}
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}

	var req dto.CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	post, err := h.service.Create(r.Context(), postsvc.CreateInput{
		AuthorID: identity.UserID,
		Title:    req.Title,
		Content:  req.Content,
		ImageKey: req.ImageKey,
		Language: enums.Language(req.Language),
	})
	if err != nil {
		handlePostsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewPostResponse(post))
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}

	posts, err := h.service.List(r.Context(), queryInt(r, "limit", "20"), queryInt(r, "offset", "0"))
	if err != nil {
		handlePostsError(w, err)
		return
	}

	items := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, dto.NewPostResponse(post))
	}

	httperrors.Write(w, http.StatusOK, dto.PostListResponse{Posts: items})
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	post, err := h.service.Get(r.Context(), postID)
	if err != nil {
		handlePostsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewPostResponse(post))
}

func (h *PostsHandler) Reanalyze(w http.ResponseWriter, r *http.Request) {
	if _, ok := authsvc.IdentityFromContext(r.Context()); !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	post, err := h.service.Reanalyze(r.Context(), postID)
	if err != nil {
		handlePostsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewPostResponse(post))
}

func (h *PostsHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if _, ok := authsvc.IdentityFromContext(r.Context()); !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	var req dto.TranslateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}
	lang, ok := enums.ParseLanguage(req.Language)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "unsupported language")
		return
	}

	pair, err := h.service.TranslateTo(r.Context(), postID, lang)
	if err != nil {
		handlePostsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.TranslateResponse{
		Language: string(lang),
		Title:    pair.Title,
		Content:  pair.Content,
	})
}

func (h *PostsHandler) Like(w http.ResponseWriter, r *http.Request) {
	if _, ok := authsvc.IdentityFromContext(r.Context()); !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	count, err := h.service.Like(r.Context(), postID)
	if err != nil {
		handlePostsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LikeResponse{LikesCount: count})
}

func (h *PostsHandler) Translations(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "POSTS_SERVICE_UNAVAILABLE", "posts service is unavailable")
		return
	}
	postID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post id")
		return
	}

	post, err := h.service.Get(r.Context(), postID)
	if err != nil {
		handlePostsError(w, err)
		return
	}

	translations := make(map[string]dto.LocalizedText, len(post.Translations))
	for lang, pair := range post.Translations {
		translations[string(lang)] = dto.LocalizedText{Title: pair.Title, Content: pair.Content}
	}

	httperrors.Write(w, http.StatusOK, map[string]any{
		"original_language": post.OriginalLanguage,
		"translations":      translations,
	})
}

func handlePostsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid post request")
	case errors.Is(err, postsvc.ErrPostNotFound):
		writeNotFound(w, "POST_NOT_FOUND", "post not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process post request")
	}
}

package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	categorysvc "github.com/Ihebmsaed/Artygen/internal/services/categories"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type CategoriesHandler struct {
	service *categorysvc.Service
}

func NewCategoriesHandler(service *categorysvc.Service) *CategoriesHandler {
	return &CategoriesHandler{service: service}
}

func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := authsvc.IdentityFromContext(r.Context()); !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "CATEGORIES_SERVICE_UNAVAILABLE", "categories service is unavailable")
		return
	}

	var req dto.CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	category, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		handleCategoriesError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	})
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATEGORIES_SERVICE_UNAVAILABLE", "categories service is unavailable")
		return
	}

	categories, err := h.service.List(r.Context())
	if err != nil {
		handleCategoriesError(w, err)
		return
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.CategoryListResponse{Categories: items})
}

func (h *CategoriesHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATEGORIES_SERVICE_UNAVAILABLE", "categories service is unavailable")
		return
	}
	categoryID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid category id")
		return
	}

	subs, err := h.service.ListSubcategories(r.Context(), categoryID)
	if err != nil {
		handleCategoriesError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SubcategoryListResponse{
		Subcategories: dto.NewSubcategoryResponses(subs),
	})
}

func (h *CategoriesHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if _, ok := authsvc.IdentityFromContext(r.Context()); !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "CATEGORIES_SERVICE_UNAVAILABLE", "categories service is unavailable")
		return
	}
	categoryID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid category id")
		return
	}

	result, err := h.service.Suggest(r.Context(), categoryID)
	if err != nil {
		if writeAIError(w, err) {
			return
		}
		handleCategoriesError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SuggestSubcategoriesResponse{
		Suggestions: dto.NewSubcategoryResponses(result.Suggestions),
		Clean:       result.Clean,
	})
}

func handleCategoriesError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, categorysvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid category request")
	case errors.Is(err, categorysvc.ErrCategoryNotFound):
		writeNotFound(w, "CATEGORY_NOT_FOUND", "category not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process category request")
	}
}

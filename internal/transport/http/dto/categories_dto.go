package dto

import "github.com/Ihebmsaed/Artygen/internal/domain/model"

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type SubcategoryResponse struct {
	ID          int64  `json:"id,omitempty"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SubcategoryListResponse struct {
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type SuggestSubcategoriesResponse struct {
	Suggestions []SubcategoryResponse `json:"suggestions"`
	Clean       bool                  `json:"clean"`
}

func NewSubcategoryResponses(subs []model.Subcategory) []SubcategoryResponse {
	out := make([]SubcategoryResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, SubcategoryResponse{
			ID:          sub.ID,
			CategoryID:  sub.CategoryID,
			Name:        sub.Name,
			Description: sub.Description,
		})
	}
	return out
}

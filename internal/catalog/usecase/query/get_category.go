package query

import (
	"context"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// GetCategoryQuery represents the query to get a category by ID
type GetCategoryQuery struct {
	ID string
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(categories domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{categories: categories}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) (*domain.Category, error) {
	return h.categories.FindByID(ctx, q.ID)
}

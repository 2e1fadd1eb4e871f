package command

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID string
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(categories domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories}
}

// Handle executes the delete category command. Deletion is a soft
// deactivation and is blocked while active products reference the category.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	hasProducts, err := h.categories.HasProducts(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to check category products: %w", err)
	}
	if hasProducts {
		return domain.ErrHasDependents
	}

	return h.categories.Delete(ctx, cmd.ID)
}

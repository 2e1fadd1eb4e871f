package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// UpdateCategoryCommand represents the command to update a category
type UpdateCategoryCommand struct {
	ID          string
	Name        string
	Description string
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(categories domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{categories: categories}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	category, err := h.categories.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// The target name may be held only by this category itself
	existing, err := h.categories.FindByName(ctx, cmd.Name)
	if err == nil && existing.ID != cmd.ID {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateName, cmd.Name)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category.Update(cmd.Name, cmd.Description)

	if err := h.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a new category
type CreateCategoryCommand struct {
	Name        string
	Description string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(categories domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{categories: categories}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	// Name uniqueness is case-insensitive among active categories
	_, err := h.categories.FindByName(ctx, cmd.Name)
	if err == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateName, cmd.Name)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := domain.NewCategory(cmd.Name, cmd.Description)

	if err := h.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CategoryID  string
	ImageURL    string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, categories: categories}
}

// Handle executes the update product command. Category reassignment is
// allowed; all checks run before any mutation so a failed update leaves
// the product untouched.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.products.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	exists, err := h.categories.Exists(ctx, cmd.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, cmd.CategoryID)
	}

	if err := product.Update(cmd.Name, cmd.Description, cmd.Price, cmd.CategoryID, cmd.ImageURL); err != nil {
		return nil, err
	}

	if err := h.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name          string
	Description   string
	Price         float64
	CategoryID    string
	StockQuantity int
	ImageURL      string
	SKU           string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *CreateProductHandler {
	return &CreateProductHandler{products: products, categories: categories}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	exists, err := h.categories.Exists(ctx, cmd.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, cmd.CategoryID)
	}

	product, err := domain.NewProduct(
		cmd.Name,
		cmd.Description,
		cmd.Price,
		cmd.CategoryID,
		cmd.StockQuantity,
		cmd.ImageURL,
		cmd.SKU,
	)
	if err != nil {
		return nil, err
	}

	if err := h.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

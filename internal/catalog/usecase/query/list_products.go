package query

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// ListProductsQuery represents the query to list all active products
type ListProductsQuery struct {
	CategoryID string // Optional: filter by category
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	products domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(products domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{products: products}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	var products []domain.Product
	var err error

	if q.CategoryID != "" {
		products, err = h.products.FindByCategory(ctx, q.CategoryID)
	} else {
		products, err = h.products.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

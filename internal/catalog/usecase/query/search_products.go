package query

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// SearchProductsQuery represents the query to search products by name
type SearchProductsQuery struct {
	Term string
}

// SearchProductsHandler handles product name search query
type SearchProductsHandler struct {
	products domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(products domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{products: products}
}

// Handle executes the search query. Matching is a case-insensitive
// substring match on the product name.
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) ([]domain.Product, error) {
	products, err := h.products.SearchByName(ctx, q.Term)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

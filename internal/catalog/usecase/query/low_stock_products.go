package query

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// LowStockProductsQuery represents the query for products under a stock
// threshold. The threshold is caller-supplied and independent of the
// fixed default used by the low-stock product flag.
type LowStockProductsQuery struct {
	Threshold int
}

// LowStockProductsHandler handles low stock products query
type LowStockProductsHandler struct {
	products domain.ProductRepository
}

// NewLowStockProductsHandler creates a new low stock products handler
func NewLowStockProductsHandler(products domain.ProductRepository) *LowStockProductsHandler {
	return &LowStockProductsHandler{products: products}
}

// Handle executes the low stock products query
func (h *LowStockProductsHandler) Handle(ctx context.Context, q LowStockProductsQuery) ([]domain.Product, error) {
	threshold := q.Threshold
	if threshold <= 0 {
		threshold = domain.DefaultLowStockThreshold
	}

	products, err := h.products.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}

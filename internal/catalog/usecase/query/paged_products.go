package query

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// PagedProductsQuery represents the query for a 1-indexed page of products
type PagedProductsQuery struct {
	Page     int
	PageSize int
}

// PagedProducts is a page slice plus the counts needed for navigation
type PagedProducts struct {
	Items       []domain.Product
	Page        int
	PageSize    int
	TotalCount  int64
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// PagedProductsHandler handles paged products query
type PagedProductsHandler struct {
	products domain.ProductRepository
}

// NewPagedProductsHandler creates a new paged products handler
func NewPagedProductsHandler(products domain.ProductRepository) *PagedProductsHandler {
	return &PagedProductsHandler{products: products}
}

// Handle executes the paged products query. A page past the end yields
// an empty slice, not an error.
func (h *PagedProductsHandler) Handle(ctx context.Context, q PagedProductsQuery) (*PagedProducts, error) {
	// Defaults
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 10
	}

	items, err := h.products.FindPaged(ctx, q.Page, q.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to page products: %w", err)
	}

	totalCount, err := h.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	totalPages := int((totalCount + int64(q.PageSize) - 1) / int64(q.PageSize))

	return &PagedProducts{
		Items:       items,
		Page:        q.Page,
		PageSize:    q.PageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: q.Page > 1,
		HasNext:     q.Page < totalPages,
	}, nil
}

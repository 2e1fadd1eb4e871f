package query

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// GetDashboardQuery represents the query for catalog summary statistics
type GetDashboardQuery struct{}

// CategoryStats is the per-category slice of the dashboard. Categories
// with zero active products are included, not filtered out.
type CategoryStats struct {
	CategoryID   string
	CategoryName string
	ProductCount int
}

// Dashboard aggregates summary statistics over the active catalog
type Dashboard struct {
	TotalProducts         int64
	TotalStockValue       float64
	LowStockProductsCount int
	LowStockProducts      []domain.Product
	CategoryStats         []CategoryStats
}

// GetDashboardHandler handles the dashboard aggregation query
type GetDashboardHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewGetDashboardHandler creates a new dashboard handler
func NewGetDashboardHandler(products domain.ProductRepository, categories domain.CategoryRepository) *GetDashboardHandler {
	return &GetDashboardHandler{products: products, categories: categories}
}

// Handle executes the dashboard aggregation. It is a pure read-side
// fan-out: no entity is mutated, and an empty catalog yields zero
// aggregates without error.
func (h *GetDashboardHandler) Handle(ctx context.Context, _ GetDashboardQuery) (*Dashboard, error) {
	totalProducts, err := h.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	totalStockValue, err := h.products.TotalStockValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum stock value: %w", err)
	}

	lowStock, err := h.products.FindLowStock(ctx, domain.DefaultLowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	categories, err := h.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	allProducts, err := h.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	countByCategory := make(map[string]int, len(categories))
	for _, p := range allProducts {
		countByCategory[p.CategoryID]++
	}

	stats := make([]CategoryStats, 0, len(categories))
	for _, c := range categories {
		stats = append(stats, CategoryStats{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			ProductCount: countByCategory[c.ID],
		})
	}

	return &Dashboard{
		TotalProducts:         totalProducts,
		TotalStockValue:       totalStockValue,
		LowStockProductsCount: len(lowStock),
		LowStockProducts:      lowStock,
		CategoryStats:         stats,
	}, nil
}

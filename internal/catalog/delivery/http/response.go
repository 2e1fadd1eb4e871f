package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/query"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Error: message})
}

// statusForError maps the domain failure taxonomy onto HTTP status codes:
// absent results become 404, rule violations become 400, anything else
// is an unexpected persistence failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrHasDependents),
		errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest
	case domain.IsInvalidArgument(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// productResponse is the transfer record for a product, carrying the
// derived stock fields alongside the stored attributes.
type productResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	CategoryID      string    `json:"category_id"`
	StockQuantity   int       `json:"stock_quantity"`
	ImageURL        string    `json:"image_url,omitempty"`
	SKU             string    `json:"sku"`
	IsLowStock      bool      `json:"is_low_stock"`
	IsOutOfStock    bool      `json:"is_out_of_stock"`
	TotalStockValue float64   `json:"total_stock_value"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		CategoryID:      p.CategoryID,
		StockQuantity:   p.StockQuantity,
		ImageURL:        p.ImageURL,
		SKU:             p.SKU,
		IsLowStock:      p.IsLowStock(),
		IsOutOfStock:    p.IsOutOfStock(),
		TotalStockValue: p.TotalStockValue(),
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}

type pagedProductsResponse struct {
	Items       []productResponse `json:"items"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalCount  int64             `json:"total_count"`
	TotalPages  int               `json:"total_pages"`
	HasPrevious bool              `json:"has_previous"`
	HasNext     bool              `json:"has_next"`
}

func toPagedProductsResponse(p *query.PagedProducts) pagedProductsResponse {
	return pagedProductsResponse{
		Items:       toProductResponses(p.Items),
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}

type categoryStatsResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	ProductCount int    `json:"product_count"`
}

type dashboardResponse struct {
	TotalProducts         int64                   `json:"total_products"`
	TotalStockValue       float64                 `json:"total_stock_value"`
	LowStockProductsCount int                     `json:"low_stock_products_count"`
	LowStockProducts      []productResponse       `json:"low_stock_products"`
	CategoryStats         []categoryStatsResponse `json:"category_stats"`
}

func toDashboardResponse(d *query.Dashboard) dashboardResponse {
	stats := make([]categoryStatsResponse, 0, len(d.CategoryStats))
	for _, s := range d.CategoryStats {
		stats = append(stats, categoryStatsResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			ProductCount: s.ProductCount,
		})
	}
	return dashboardResponse{
		TotalProducts:         d.TotalProducts,
		TotalStockValue:       d.TotalStockValue,
		LowStockProductsCount: d.LowStockProductsCount,
		LowStockProducts:      toProductResponses(d.LowStockProducts),
		CategoryStats:         stats,
	}
}

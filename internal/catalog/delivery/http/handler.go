package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/command"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/query"
	"github.com/shelfwise/catalog-service/kafka"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS handlers
type CatalogHandler struct {
	// Command handlers
	createProduct  *command.CreateProductHandler
	updateProduct  *command.UpdateProductHandler
	updateStock    *command.UpdateStockHandler
	addStock       *command.AddStockHandler
	removeStock    *command.RemoveStockHandler
	deleteProduct  *command.DeleteProductHandler
	createCategory *command.CreateCategoryHandler
	updateCategory *command.UpdateCategoryHandler
	deleteCategory *command.DeleteCategoryHandler

	// Query handlers
	getProduct     *query.GetProductHandler
	listProducts   *query.ListProductsHandler
	searchProducts *query.SearchProductsHandler
	pagedProducts  *query.PagedProductsHandler
	lowStock       *query.LowStockProductsHandler
	getCategory    *query.GetCategoryHandler
	listCategories *query.ListCategoriesHandler
	dashboard      *query.GetDashboardHandler

	products domain.ProductRepository

	publisher *kafka.Publisher
	cache     *ResponseCache
}

// NewCatalogHandler creates a catalog handler wiring all CQRS handlers
// by hand (used by tests and as a Wire fallback)
func NewCatalogHandler(products domain.ProductRepository, categories domain.CategoryRepository) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		command.NewCreateProductHandler(products, categories),
		command.NewUpdateProductHandler(products, categories),
		command.NewUpdateStockHandler(products),
		command.NewAddStockHandler(products),
		command.NewRemoveStockHandler(products),
		command.NewDeleteProductHandler(products),
		command.NewCreateCategoryHandler(categories),
		command.NewUpdateCategoryHandler(categories),
		command.NewDeleteCategoryHandler(categories),
		query.NewGetProductHandler(products),
		query.NewListProductsHandler(products),
		query.NewSearchProductsHandler(products),
		query.NewPagedProductsHandler(products),
		query.NewLowStockProductsHandler(products),
		query.NewGetCategoryHandler(categories),
		query.NewListCategoriesHandler(categories),
		query.NewGetDashboardHandler(products, categories),
		products,
	)
}

// NewCatalogHandlerWithDI creates a catalog handler from pre-built
// handlers. This is the constructor Wire uses.
func NewCatalogHandlerWithDI(
	createProduct *command.CreateProductHandler,
	updateProduct *command.UpdateProductHandler,
	updateStock *command.UpdateStockHandler,
	addStock *command.AddStockHandler,
	removeStock *command.RemoveStockHandler,
	deleteProduct *command.DeleteProductHandler,
	createCategory *command.CreateCategoryHandler,
	updateCategory *command.UpdateCategoryHandler,
	deleteCategory *command.DeleteCategoryHandler,
	getProduct *query.GetProductHandler,
	listProducts *query.ListProductsHandler,
	searchProducts *query.SearchProductsHandler,
	pagedProducts *query.PagedProductsHandler,
	lowStock *query.LowStockProductsHandler,
	getCategory *query.GetCategoryHandler,
	listCategories *query.ListCategoriesHandler,
	dashboard *query.GetDashboardHandler,
	products domain.ProductRepository,
) *CatalogHandler {
	return &CatalogHandler{
		createProduct:  createProduct,
		updateProduct:  updateProduct,
		updateStock:    updateStock,
		addStock:       addStock,
		removeStock:    removeStock,
		deleteProduct:  deleteProduct,
		createCategory: createCategory,
		updateCategory: updateCategory,
		deleteCategory: deleteCategory,
		getProduct:     getProduct,
		listProducts:   listProducts,
		searchProducts: searchProducts,
		pagedProducts:  pagedProducts,
		lowStock:       lowStock,
		getCategory:    getCategory,
		listCategories: listCategories,
		dashboard:      dashboard,
		products:       products,
	}
}

// WithPublisher attaches an optional Kafka publisher for lifecycle events
func (h *CatalogHandler) WithPublisher(p *kafka.Publisher) *CatalogHandler {
	h.publisher = p
	return h
}

// WithCache attaches an optional Redis response cache for read endpoints
func (h *CatalogHandler) WithCache(c *ResponseCache) *CatalogHandler {
	h.cache = c
	return h
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Literal paths are registered before the {id} routes; mux matches
	// in registration order.
	router.HandleFunc("/api/products", metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/paged", metricsMiddleware("/api/products/paged", h.GetPagedProducts)).Methods("GET")
	router.HandleFunc("/api/products/search", metricsMiddleware("/api/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products/low-stock", metricsMiddleware("/api/products/low-stock", h.GetLowStockProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products", metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/stock", metricsMiddleware("/api/products/{id}/stock", h.UpdateStock)).Methods("PATCH")
	router.HandleFunc("/api/products/{id}/stock/add", metricsMiddleware("/api/products/{id}/stock/add", h.AddStock)).Methods("POST")
	router.HandleFunc("/api/products/{id}/stock/remove", metricsMiddleware("/api/products/{id}/stock/remove", h.RemoveStock)).Methods("POST")

	router.HandleFunc("/api/categories", metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", metricsMiddleware("/api/categories/{id}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories", metricsMiddleware("/api/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", metricsMiddleware("/api/categories/{id}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", metricsMiddleware("/api/categories/{id}", h.DeleteCategory)).Methods("DELETE")

	router.HandleFunc("/api/dashboard", metricsMiddleware("/api/dashboard", h.cached(h.GetDashboard))).Methods("GET")
}

// cached wraps a read endpoint with the response cache when one is attached
func (h *CatalogHandler) cached(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.cache == nil {
			next(w, r)
			return
		}
		h.cache.Middleware(next)(w, r)
	}
}

// RegisterHealthCheck registers the /health endpoint pinging the database
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// updateProductsMetric refreshes the active-products gauge
func (h *CatalogHandler) updateProductsMetric(r *http.Request) {
	count, err := h.products.Count(r.Context())
	if err == nil {
		totalProductsGauge.Set(float64(count))
	}
}

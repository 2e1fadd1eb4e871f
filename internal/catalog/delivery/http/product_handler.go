package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/command"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/query"
	"github.com/shelfwise/catalog-service/kafka"
	"github.com/shelfwise/catalog-service/pkg/logger"
)

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.createProduct.Handle(r.Context(), command.CreateProductCommand{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		SKU:           req.SKU,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("name", req.Name).Msg("Failed to create product")
		respondError(w, statusForError(err), err.Error())
		return
	}

	if h.publisher != nil {
		event := kafka.ProductCreatedEvent{
			ProductID:     product.ID,
			Name:          product.Name,
			SKU:           product.SKU,
			CategoryID:    product.CategoryID,
			Price:         product.Price,
			StockQuantity: product.StockQuantity,
		}
		if perr := h.publisher.PublishProductCreated(r.Context(), event); perr != nil {
			logger.WithContext(r.Context()).Warn().Err(perr).Str("product_id", product.ID).Msg("Failed to publish product created event")
		}
	}
	h.updateProductsMetric(r)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    toProductResponse(product),
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getProduct.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toProductResponse(product),
	})
}

// ListProducts handles GET /api/products with optional ?category_id= filter
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Handle(r.Context(), query.ListProductsQuery{
		CategoryID: r.URL.Query().Get("category_id"),
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list products")
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toProductResponses(products),
	})
}

// SearchProducts handles GET /api/products/search?q=term
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		respondError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	products, err := h.searchProducts.Handle(r.Context(), query.SearchProductsQuery{Term: term})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toProductResponses(products),
	})
}

// GetPagedProducts handles GET /api/products/paged?page=&page_size=
func (h *CatalogHandler) GetPagedProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	result, err := h.pagedProducts.Handle(r.Context(), query.PagedProductsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toPagedProductsResponse(result),
	})
}

// GetLowStockProducts handles GET /api/products/low-stock?threshold=
func (h *CatalogHandler) GetLowStockProducts(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))

	products, err := h.lowStock.Handle(r.Context(), query.LowStockProductsQuery{Threshold: threshold})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toProductResponses(products),
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.updateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("product_id", id).Msg("Failed to update product")
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    toProductResponse(product),
	})
}

// UpdateStock handles PATCH /api/products/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateStockRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.updateStock.Handle(r.Context(), command.UpdateStockCommand{
		ID:       id,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	h.publishStockChanged(r, product)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    toProductResponse(product),
	})
}

// AddStock handles POST /api/products/{id}/stock/add
func (h *CatalogHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req adjustStockRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.addStock.Handle(r.Context(), command.AddStockCommand{
		ID:       id,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	h.publishStockChanged(r, product)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock increased successfully",
		Data:    toProductResponse(product),
	})
}

// RemoveStock handles POST /api/products/{id}/stock/remove
func (h *CatalogHandler) RemoveStock(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req adjustStockRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.removeStock.Handle(r.Context(), command.RemoveStockCommand{
		ID:       id,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	h.publishStockChanged(r, product)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock decreased successfully",
		Data:    toProductResponse(product),
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	if h.publisher != nil {
		event := kafka.ProductDeletedEvent{ProductID: id}
		if perr := h.publisher.PublishProductDeleted(r.Context(), event); perr != nil {
			logger.WithContext(r.Context()).Warn().Err(perr).Str("product_id", id).Msg("Failed to publish product deleted event")
		}
	}
	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

func (h *CatalogHandler) publishStockChanged(r *http.Request, product *domain.Product) {
	if h.publisher == nil {
		return
	}
	event := kafka.StockChangedEvent{
		ProductID:     product.ID,
		SKU:           product.SKU,
		StockQuantity: product.StockQuantity,
	}
	if err := h.publisher.PublishStockChanged(r.Context(), event); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Str("product_id", product.ID).Msg("Failed to publish stock changed event")
	}
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/repository"
)

type testEnv struct {
	router     *mux.Router
	products   *repository.InMemoryProductRepository
	categories *repository.InMemoryCategoryRepository
}

func newTestEnv() *testEnv {
	products := repository.NewInMemoryProductRepository()
	categories := repository.NewInMemoryCategoryRepository(products)

	router := mux.NewRouter()
	NewCatalogHandler(products, categories).RegisterRoutes(router)

	return &testEnv{router: router, products: products, categories: categories}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (e *testEnv) seedCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	category := domain.NewCategory(name, name+" description")
	require.NoError(t, e.categories.Create(context.Background(), category))
	return category
}

func (e *testEnv) seedProduct(t *testing.T, name, categoryID string, price float64, stock int) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(name, "desc", price, categoryID, stock, "", "")
	require.NoError(t, err)
	require.NoError(t, e.products.Create(context.Background(), product))
	return product
}

func TestCreateCategoryEndpoint(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/categories", map[string]string{
		"name":        "Electronics",
		"description": "Devices and gadgets",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Category created successfully", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Electronics", data["name"])
}

func TestCreateCategoryEndpoint_Validation(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/categories", map[string]string{
		"description": "no name",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Name")
}

func TestCreateCategoryEndpoint_Duplicate(t *testing.T) {
	env := newTestEnv()
	env.seedCategory(t, "Electronics")

	rec := env.do(t, http.MethodPost, "/api/categories", map[string]string{
		"name":        "ELECTRONICS",
		"description": "Clash",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCategoryEndpoint_WithProducts(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	env.seedProduct(t, "Laptop", category.ID, 999.0, 5)

	rec := env.do(t, http.MethodDelete, "/api/categories/"+category.ID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Category remains readable
	rec = env.do(t, http.MethodGet, "/api/categories/"+category.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCategoryEndpoint_NotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodDelete, "/api/categories/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")

	rec := env.do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":           "Laptop",
		"description":    "Portable computer",
		"price":          1299.99,
		"category_id":    category.ID,
		"stock_quantity": 8,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["sku"])
	assert.Equal(t, true, data["is_low_stock"])
	assert.Equal(t, false, data["is_out_of_stock"])
	assert.InDelta(t, 1299.99*8, data["total_stock_value"].(float64), 0.01)
}

func TestCreateProductEndpoint_UnknownCategory(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":        "Laptop",
		"description": "Portable computer",
		"price":       1299.99,
		"category_id": "missing",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductEndpoint_NegativePrice(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")

	rec := env.do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":        "Laptop",
		"description": "Portable computer",
		"price":       -1.0,
		"category_id": category.ID,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductEndpoint_NotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/products/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestListProductsEndpoint_CategoryFilter(t *testing.T) {
	env := newTestEnv()
	electronics := env.seedCategory(t, "Electronics")
	books := env.seedCategory(t, "Books")
	env.seedProduct(t, "Laptop", electronics.ID, 999.0, 5)
	env.seedProduct(t, "Novel", books.ID, 14.0, 20)

	rec := env.do(t, http.MethodGet, "/api/products?category_id="+books.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Novel", items[0].(map[string]interface{})["name"])
}

func TestSearchProductsEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	env.seedProduct(t, "Gaming Laptop", category.ID, 1999.0, 3)
	env.seedProduct(t, "Phone", category.ID, 599.0, 12)

	rec := env.do(t, http.MethodGet, "/api/products/search?q=laptop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Len(t, resp.Data.([]interface{}), 1)

	// Missing term is rejected
	rec = env.do(t, http.MethodGet, "/api/products/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPagedProductsEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	for i := 0; i < 12; i++ {
		env.seedProduct(t, fmt.Sprintf("Item %02d", i), category.ID, 1.0, 5)
	}

	rec := env.do(t, http.MethodGet, "/api/products/paged?page=2&page_size=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Len(t, data["items"].([]interface{}), 5)
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, float64(12), data["total_count"])
	assert.Equal(t, float64(3), data["total_pages"])
	assert.Equal(t, true, data["has_previous"])
	assert.Equal(t, true, data["has_next"])
}

func TestLowStockEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	env.seedProduct(t, "Scarce", category.ID, 5.0, 2)
	env.seedProduct(t, "Plenty", category.ID, 5.0, 50)

	rec := env.do(t, http.MethodGet, "/api/products/low-stock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Len(t, resp.Data.([]interface{}), 1)

	rec = env.do(t, http.MethodGet, "/api/products/low-stock?threshold=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeResponse(t, rec)
	assert.Len(t, resp.Data.([]interface{}), 2)
}

func TestUpdateStockEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	product := env.seedProduct(t, "Laptop", category.ID, 999.0, 5)

	rec := env.do(t, http.MethodPatch, "/api/products/"+product.ID+"/stock", map[string]int{"quantity": 30})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(30), data["stock_quantity"])
}

func TestAdjustStockEndpoints(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	product := env.seedProduct(t, "Laptop", category.ID, 999.0, 5)

	rec := env.do(t, http.MethodPost, "/api/products/"+product.ID+"/stock/add", map[string]int{"quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(8), data["stock_quantity"])

	// Removing more than available is a stock rule violation
	rec = env.do(t, http.MethodPost, "/api/products/"+product.ID+"/stock/remove", map[string]int{"quantity": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/products/"+product.ID+"/stock/remove", map[string]int{"quantity": 8})
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["stock_quantity"])
	assert.Equal(t, true, data["is_out_of_stock"])

	// Zero quantity fails request validation
	rec = env.do(t, http.MethodPost, "/api/products/"+product.ID+"/stock/add", map[string]int{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProductEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	product := env.seedProduct(t, "Laptop", category.ID, 999.0, 5)

	rec := env.do(t, http.MethodDelete, "/api/products/"+product.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	env := newTestEnv()
	electronics := env.seedCategory(t, "Electronics")
	env.seedCategory(t, "Garden")
	env.seedProduct(t, "Laptop", electronics.ID, 1000.0, 2)
	env.seedProduct(t, "Phone", electronics.ID, 500.0, 20)

	rec := env.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total_products"])
	assert.InDelta(t, 12000.0, data["total_stock_value"].(float64), 0.001)
	assert.Equal(t, float64(1), data["low_stock_products_count"])

	stats := data["category_stats"].([]interface{})
	require.Len(t, stats, 2, "empty categories stay visible")
}

func TestUpdateProductEndpoint(t *testing.T) {
	env := newTestEnv()
	category := env.seedCategory(t, "Electronics")
	product := env.seedProduct(t, "Laptop", category.ID, 999.0, 5)

	rec := env.do(t, http.MethodPut, "/api/products/"+product.ID, map[string]interface{}{
		"name":        "Laptop Pro",
		"description": "Faster",
		"price":       1499.0,
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, "Laptop Pro", data["name"])
	assert.Equal(t, float64(5), data["stock_quantity"], "stock untouched by update")
}

func TestUpdateCategoryEndpoint_Duplicate(t *testing.T) {
	env := newTestEnv()
	env.seedCategory(t, "Tools")
	garden := env.seedCategory(t, "Garden")

	rec := env.do(t, http.MethodPut, "/api/categories/"+garden.ID, map[string]string{
		"name":        "tools",
		"description": "Clash",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

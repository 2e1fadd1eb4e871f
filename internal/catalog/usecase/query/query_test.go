package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/repository"
)

type queryFixture struct {
	products   *repository.InMemoryProductRepository
	categories *repository.InMemoryCategoryRepository
}

func newQueryFixture() *queryFixture {
	products := repository.NewInMemoryProductRepository()
	return &queryFixture{
		products:   products,
		categories: repository.NewInMemoryCategoryRepository(products),
	}
}

func (f *queryFixture) addCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	category := domain.NewCategory(name, name+" description")
	require.NoError(t, f.categories.Create(context.Background(), category))
	return category
}

func (f *queryFixture) addProduct(t *testing.T, name, categoryID string, price float64, stock int) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(name, "desc", price, categoryID, stock, "", "")
	require.NoError(t, err)
	require.NoError(t, f.products.Create(context.Background(), product))
	return product
}

func TestGetProduct(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")
	created := f.addProduct(t, "Laptop", category.ID, 999.0, 5)

	handler := NewGetProductHandler(f.products)

	product, err := handler.Handle(context.Background(), GetProductQuery{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)

	_, err = handler.Handle(context.Background(), GetProductQuery{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	f := newQueryFixture()
	electronics := f.addCategory(t, "Electronics")
	books := f.addCategory(t, "Books")
	f.addProduct(t, "Laptop", electronics.ID, 999.0, 5)
	f.addProduct(t, "Novel", books.ID, 14.0, 20)
	f.addProduct(t, "Phone", electronics.ID, 599.0, 12)

	handler := NewListProductsHandler(f.products)
	ctx := context.Background()

	all, err := handler.Handle(ctx, ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := handler.Handle(ctx, ListProductsQuery{CategoryID: electronics.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Laptop", filtered[0].Name)
	assert.Equal(t, "Phone", filtered[1].Name)
}

func TestSearchProducts(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")
	f.addProduct(t, "Gaming Laptop", category.ID, 1999.0, 3)
	f.addProduct(t, "laptop stand", category.ID, 39.0, 15)
	f.addProduct(t, "Phone", category.ID, 599.0, 12)

	handler := NewSearchProductsHandler(f.products)

	results, err := handler.Handle(context.Background(), SearchProductsQuery{Term: "LAPTOP"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestPagedProducts(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")
	for i := 0; i < 25; i++ {
		f.addProduct(t, fmt.Sprintf("Item %02d", i), category.ID, 1.0, 5)
	}

	handler := NewPagedProductsHandler(f.products)
	ctx := context.Background()

	result, err := handler.Handle(ctx, PagedProductsQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, int64(25), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasPrevious)
	assert.False(t, result.HasNext)

	first, err := handler.Handle(ctx, PagedProductsQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)
}

func TestPagedProducts_Defaults(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")
	f.addProduct(t, "Item", category.ID, 1.0, 5)

	handler := NewPagedProductsHandler(f.products)

	result, err := handler.Handle(context.Background(), PagedProductsQuery{Page: 0, PageSize: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.PageSize)
	assert.Len(t, result.Items, 1)
}

func TestPagedProducts_BeyondLastPage(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")
	for i := 0; i < 5; i++ {
		f.addProduct(t, fmt.Sprintf("Item %d", i), category.ID, 1.0, 5)
	}

	handler := NewPagedProductsHandler(f.products)

	result, err := handler.Handle(context.Background(), PagedProductsQuery{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(5), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasNext)
}

func TestLowStockProducts(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")
	f.addProduct(t, "Scarce", category.ID, 5.0, 2)
	f.addProduct(t, "Medium", category.ID, 5.0, 12)
	f.addProduct(t, "Plenty", category.ID, 5.0, 50)

	handler := NewLowStockProductsHandler(f.products)
	ctx := context.Background()

	// Zero threshold falls back to the default
	defaulted, err := handler.Handle(ctx, LowStockProductsQuery{})
	require.NoError(t, err)
	require.Len(t, defaulted, 1)
	assert.Equal(t, "Scarce", defaulted[0].Name)

	custom, err := handler.Handle(ctx, LowStockProductsQuery{Threshold: 20})
	require.NoError(t, err)
	assert.Len(t, custom, 2)
}

func TestGetCategory(t *testing.T) {
	f := newQueryFixture()
	category := f.addCategory(t, "Electronics")

	handler := NewGetCategoryHandler(f.categories)

	found, err := handler.Handle(context.Background(), GetCategoryQuery{ID: category.ID})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", found.Name)

	_, err = handler.Handle(context.Background(), GetCategoryQuery{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCategories(t *testing.T) {
	f := newQueryFixture()
	f.addCategory(t, "Electronics")
	f.addCategory(t, "Books")

	handler := NewListCategoriesHandler(f.categories)

	categories, err := handler.Handle(context.Background(), ListCategoriesQuery{})
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.Equal(t, "Books", categories[1].Name)
}

func TestGetDashboard(t *testing.T) {
	f := newQueryFixture()
	electronics := f.addCategory(t, "Electronics")
	books := f.addCategory(t, "Books")
	empty := f.addCategory(t, "Garden")

	f.addProduct(t, "Laptop", electronics.ID, 1000.0, 2) // low stock, value 2000
	f.addProduct(t, "Phone", electronics.ID, 500.0, 20)  // value 10000
	f.addProduct(t, "Novel", books.ID, 10.0, 5)          // low stock, value 50

	handler := NewGetDashboardHandler(f.products, f.categories)

	dashboard, err := handler.Handle(context.Background(), GetDashboardQuery{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), dashboard.TotalProducts)
	assert.InDelta(t, 12050.0, dashboard.TotalStockValue, 0.001)
	assert.Equal(t, 2, dashboard.LowStockProductsCount)
	assert.Len(t, dashboard.LowStockProducts, 2)

	require.Len(t, dashboard.CategoryStats, 3)
	byName := make(map[string]CategoryStats)
	for _, s := range dashboard.CategoryStats {
		byName[s.CategoryName] = s
	}
	assert.Equal(t, 2, byName["Electronics"].ProductCount)
	assert.Equal(t, 1, byName["Books"].ProductCount)
	assert.Equal(t, 0, byName["Garden"].ProductCount, "empty categories stay visible")
	assert.Equal(t, empty.ID, byName["Garden"].CategoryID)
}

func TestGetDashboard_EmptyCatalog(t *testing.T) {
	f := newQueryFixture()
	handler := NewGetDashboardHandler(f.products, f.categories)

	dashboard, err := handler.Handle(context.Background(), GetDashboardQuery{})
	require.NoError(t, err)

	assert.Zero(t, dashboard.TotalProducts)
	assert.Zero(t, dashboard.TotalStockValue)
	assert.Zero(t, dashboard.LowStockProductsCount)
	assert.Empty(t, dashboard.CategoryStats)
}

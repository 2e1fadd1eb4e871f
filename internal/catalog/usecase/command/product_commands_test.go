package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/repository"
)

type productFixture struct {
	products   *repository.InMemoryProductRepository
	categories *repository.InMemoryCategoryRepository
	category   *domain.Category
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	products := repository.NewInMemoryProductRepository()
	categories := repository.NewInMemoryCategoryRepository(products)

	category := domain.NewCategory("Electronics", "Devices")
	require.NoError(t, categories.Create(context.Background(), category))

	return &productFixture{products: products, categories: categories, category: category}
}

func (f *productFixture) createProduct(t *testing.T, name string, price float64, stock int) *domain.Product {
	t.Helper()
	handler := NewCreateProductHandler(f.products, f.categories)
	product, err := handler.Handle(context.Background(), CreateProductCommand{
		Name:          name,
		Description:   "desc",
		Price:         price,
		CategoryID:    f.category.ID,
		StockQuantity: stock,
	})
	require.NoError(t, err)
	return product
}

func TestCreateProduct(t *testing.T) {
	f := newProductFixture(t)

	product := f.createProduct(t, "Laptop", 1299.99, 8)

	assert.NotEmpty(t, product.ID)
	assert.NotEmpty(t, product.SKU)
	assert.Equal(t, f.category.ID, product.CategoryID)
	assert.True(t, product.IsActive)

	stored, err := f.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", stored.Name)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	f := newProductFixture(t)
	handler := NewCreateProductHandler(f.products, f.categories)
	ctx := context.Background()

	_, err := handler.Handle(ctx, CreateProductCommand{
		Name:        "Laptop",
		Description: "desc",
		Price:       999.0,
		CategoryID:  "missing-category",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	count, err := f.products.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing persisted on failure")
}

func TestCreateProduct_DeactivatedCategoryRejected(t *testing.T) {
	f := newProductFixture(t)
	handler := NewCreateProductHandler(f.products, f.categories)
	ctx := context.Background()

	require.NoError(t, f.categories.Delete(ctx, f.category.ID))

	_, err := handler.Handle(ctx, CreateProductCommand{
		Name:        "Laptop",
		Description: "desc",
		Price:       999.0,
		CategoryID:  f.category.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	f := newProductFixture(t)
	handler := NewCreateProductHandler(f.products, f.categories)

	_, err := handler.Handle(context.Background(), CreateProductCommand{
		Name:        "Laptop",
		Description: "desc",
		Price:       -1.0,
		CategoryID:  f.category.ID,
	})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestUpdateProduct(t *testing.T) {
	f := newProductFixture(t)
	product := f.createProduct(t, "Laptop", 1299.99, 8)
	handler := NewUpdateProductHandler(f.products, f.categories)
	ctx := context.Background()

	other := domain.NewCategory("Refurbished", "Second hand")
	require.NoError(t, f.categories.Create(ctx, other))

	updated, err := handler.Handle(ctx, UpdateProductCommand{
		ID:          product.ID,
		Name:        "Laptop Pro",
		Description: "faster",
		Price:       1499.99,
		CategoryID:  other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Equal(t, other.ID, updated.CategoryID)
	assert.Equal(t, 8, updated.StockQuantity, "update must not touch stock")
}

func TestUpdateProduct_UnknownCategoryLeavesProductUnchanged(t *testing.T) {
	f := newProductFixture(t)
	product := f.createProduct(t, "Laptop", 1299.99, 8)
	handler := NewUpdateProductHandler(f.products, f.categories)
	ctx := context.Background()

	_, err := handler.Handle(ctx, UpdateProductCommand{
		ID:          product.ID,
		Name:        "Laptop Pro",
		Description: "faster",
		Price:       1499.99,
		CategoryID:  "missing-category",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	stored, err := f.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", stored.Name)
	assert.Equal(t, 1299.99, stored.Price)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	f := newProductFixture(t)
	handler := NewUpdateProductHandler(f.products, f.categories)

	_, err := handler.Handle(context.Background(), UpdateProductCommand{
		ID:         "missing",
		Name:       "X",
		CategoryID: f.category.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock(t *testing.T) {
	f := newProductFixture(t)
	product := f.createProduct(t, "Laptop", 1299.99, 8)
	handler := NewUpdateStockHandler(f.products)
	ctx := context.Background()

	updated, err := handler.Handle(ctx, UpdateStockCommand{ID: product.ID, Quantity: 42})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.StockQuantity)

	_, err = handler.Handle(ctx, UpdateStockCommand{ID: product.ID, Quantity: -1})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidArgument(err))

	stored, err := f.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, stored.StockQuantity)
}

func TestAddStock(t *testing.T) {
	f := newProductFixture(t)
	product := f.createProduct(t, "Laptop", 1299.99, 8)
	handler := NewAddStockHandler(f.products)
	ctx := context.Background()

	updated, err := handler.Handle(ctx, AddStockCommand{ID: product.ID, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.StockQuantity)

	_, err = handler.Handle(ctx, AddStockCommand{ID: product.ID, Quantity: 0})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestRemoveStock(t *testing.T) {
	f := newProductFixture(t)
	product := f.createProduct(t, "Laptop", 1299.99, 5)
	handler := NewRemoveStockHandler(f.products)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RemoveStockCommand{ID: product.ID, Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, err := f.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.StockQuantity, "failed removal must not mutate")

	updated, err := handler.Handle(ctx, RemoveStockCommand{ID: product.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity)
	assert.True(t, updated.IsOutOfStock())
}

func TestDeleteProduct(t *testing.T) {
	f := newProductFixture(t)
	product := f.createProduct(t, "Laptop", 1299.99, 8)
	handler := NewDeleteProductHandler(f.products)
	ctx := context.Background()

	require.NoError(t, handler.Handle(ctx, DeleteProductCommand{ID: product.ID}))

	_, err := f.products.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting twice reports not found
	assert.ErrorIs(t, handler.Handle(ctx, DeleteProductCommand{ID: product.ID}), domain.ErrNotFound)
}

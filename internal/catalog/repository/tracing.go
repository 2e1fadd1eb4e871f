package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracedProductRepository decorates a ProductRepository with spans per call.
type TracedProductRepository struct {
	inner domain.ProductRepository
}

func NewTracedProductRepository(inner domain.ProductRepository) *TracedProductRepository {
	return &TracedProductRepository{inner: inner}
}

var _ domain.ProductRepository = (*TracedProductRepository)(nil)

func (r *TracedProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindByID",
		trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	product, err := r.inner.FindByID(ctx, id)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("product.sku", product.SKU),
		attribute.Int("product.stock", product.StockQuantity),
	)
	return product, nil
}

func (r *TracedProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindAll")
	defer span.End()

	products, err := r.inner.FindAll(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindByCategory",
		trace.WithAttributes(attribute.String("category.id", categoryID)))
	defer span.End()

	products, err := r.inner.FindByCategory(ctx, categoryID)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) SearchByName(ctx context.Context, term string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.SearchByName",
		trace.WithAttributes(attribute.String("query.term", term)))
	defer span.End()

	products, err := r.inner.SearchByName(ctx, term)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) FindLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindLowStock",
		trace.WithAttributes(attribute.Int("query.threshold", threshold)))
	defer span.End()

	products, err := r.inner.FindLowStock(ctx, threshold)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) FindPaged(ctx context.Context, page, pageSize int) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindPaged",
		trace.WithAttributes(
			attribute.Int("query.page", page),
			attribute.Int("query.page_size", pageSize),
		))
	defer span.End()

	products, err := r.inner.FindPaged(ctx, page, pageSize)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.product.Create",
		trace.WithAttributes(
			attribute.String("product.sku", product.SKU),
			attribute.String("category.id", product.CategoryID),
		))
	defer span.End()

	if err := r.inner.Create(ctx, product); err != nil {
		recordSpanError(span, err)
		return err
	}
	span.SetAttributes(attribute.String("product.id", product.ID))
	return nil
}

func (r *TracedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.product.Update",
		trace.WithAttributes(attribute.String("product.id", product.ID)))
	defer span.End()

	if err := r.inner.Update(ctx, product); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

func (r *TracedProductRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.product.Delete",
		trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	if err := r.inner.Delete(ctx, id); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

func (r *TracedProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.product.Exists",
		trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	ok, err := r.inner.Exists(ctx, id)
	if err != nil {
		recordSpanError(span, err)
		return false, err
	}
	return ok, nil
}

func (r *TracedProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.product.Count")
	defer span.End()

	count, err := r.inner.Count(ctx)
	if err != nil {
		recordSpanError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func (r *TracedProductRepository) TotalStockValue(ctx context.Context) (float64, error) {
	ctx, span := tracer.Start(ctx, "repository.product.TotalStockValue")
	defer span.End()

	total, err := r.inner.TotalStockValue(ctx)
	if err != nil {
		recordSpanError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Float64("result.total", total))
	return total, nil
}

// TracedCategoryRepository decorates a CategoryRepository with spans per call.
type TracedCategoryRepository struct {
	inner domain.CategoryRepository
}

func NewTracedCategoryRepository(inner domain.CategoryRepository) *TracedCategoryRepository {
	return &TracedCategoryRepository{inner: inner}
}

var _ domain.CategoryRepository = (*TracedCategoryRepository)(nil)

func (r *TracedCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.category.FindByID",
		trace.WithAttributes(attribute.String("category.id", id)))
	defer span.End()

	category, err := r.inner.FindByID(ctx, id)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("category.name", category.Name))
	return category, nil
}

func (r *TracedCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.category.FindAll")
	defer span.End()

	categories, err := r.inner.FindAll(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(categories)))
	return categories, nil
}

func (r *TracedCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.category.FindByName",
		trace.WithAttributes(attribute.String("category.name", name)))
	defer span.End()

	category, err := r.inner.FindByName(ctx, name)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return category, nil
}

func (r *TracedCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	ctx, span := tracer.Start(ctx, "repository.category.Create",
		trace.WithAttributes(attribute.String("category.name", category.Name)))
	defer span.End()

	if err := r.inner.Create(ctx, category); err != nil {
		recordSpanError(span, err)
		return err
	}
	span.SetAttributes(attribute.String("category.id", category.ID))
	return nil
}

func (r *TracedCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	ctx, span := tracer.Start(ctx, "repository.category.Update",
		trace.WithAttributes(attribute.String("category.id", category.ID)))
	defer span.End()

	if err := r.inner.Update(ctx, category); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

func (r *TracedCategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.category.Delete",
		trace.WithAttributes(attribute.String("category.id", id)))
	defer span.End()

	if err := r.inner.Delete(ctx, id); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

func (r *TracedCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.category.Exists",
		trace.WithAttributes(attribute.String("category.id", id)))
	defer span.End()

	ok, err := r.inner.Exists(ctx, id)
	if err != nil {
		recordSpanError(span, err)
		return false, err
	}
	return ok, nil
}

func (r *TracedCategoryRepository) HasProducts(ctx context.Context, categoryID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.category.HasProducts",
		trace.WithAttributes(attribute.String("category.id", categoryID)))
	defer span.End()

	ok, err := r.inner.HasProducts(ctx, categoryID)
	if err != nil {
		recordSpanError(span, err)
		return false, err
	}
	span.SetAttributes(attribute.Bool("result.has_products", ok))
	return ok, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

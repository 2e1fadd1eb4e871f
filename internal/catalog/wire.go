//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/shelfwise/catalog-service/internal/catalog/delivery/http"
	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/catalog/repository"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/command"
	"github.com/shelfwise/catalog-service/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the product repository wrapped with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracedProductRepository(repository.NewGormProductRepository(db))
}

// ProvideCategoryRepository provides the category repository wrapped with tracing
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewTracedCategoryRepository(repository.NewGormCategoryRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewUpdateStockHandler,
	command.NewAddStockHandler,
	command.NewRemoveStockHandler,
	command.NewDeleteProductHandler,
	command.NewCreateCategoryHandler,
	command.NewUpdateCategoryHandler,
	command.NewDeleteCategoryHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewSearchProductsHandler,
	query.NewPagedProductsHandler,
	query.NewLowStockProductsHandler,
	query.NewGetCategoryHandler,
	query.NewListCategoriesHandler,
	query.NewGetDashboardHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeCatalogHandler initializes the catalog HTTP handler with all dependencies
func InitializeCatalogHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}

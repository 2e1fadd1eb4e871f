package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// InMemoryProductRepository is a thread-safe map-backed ProductRepository.
// It mirrors the read semantics of the GORM repository (active rows only,
// insertion order) and backs the unit tests.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: make(map[string]domain.Product)}
}

var _ domain.ProductRepository = (*InMemoryProductRepository)(nil)

func (s *InMemoryProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.filter(func(p domain.Product) bool { return true }), nil
}

func (s *InMemoryProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.filter(func(p domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (s *InMemoryProductRepository) SearchByName(ctx context.Context, term string) ([]domain.Product, error) {
	needle := strings.ToLower(term)
	return s.filter(func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

func (s *InMemoryProductRepository) FindLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	return s.filter(func(p domain.Product) bool { return p.StockQuantity < threshold }), nil
}

func (s *InMemoryProductRepository) FindPaged(ctx context.Context, page, pageSize int) ([]domain.Product, error) {
	all := s.filter(func(p domain.Product) bool { return true })

	start := (page - 1) * pageSize
	if start >= len(all) {
		return []domain.Product{}, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *InMemoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = *product
	s.order = append(s.order, product.ID)
	return nil
}

func (s *InMemoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = *product
	return nil
}

func (s *InMemoryProductRepository) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return domain.ErrNotFound
	}
	p.Deactivate()
	s.products[id] = p
	return nil
}

func (s *InMemoryProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return ok && p.IsActive, nil
}

func (s *InMemoryProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(s.filter(func(p domain.Product) bool { return true }))), nil
}

func (s *InMemoryProductRepository) TotalStockValue(ctx context.Context) (float64, error) {
	var total float64
	for _, p := range s.filter(func(p domain.Product) bool { return true }) {
		total += p.TotalStockValue()
	}
	return total, nil
}

func (s *InMemoryProductRepository) filter(keep func(domain.Product) bool) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.products[id]
		if p.IsActive && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// InMemoryCategoryRepository is a thread-safe map-backed CategoryRepository.
// HasProducts consults an optional product repository, matching how the
// GORM implementation counts the products table.
type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	order      []string
	products   *InMemoryProductRepository
}

func NewInMemoryCategoryRepository(products *InMemoryProductRepository) *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: make(map[string]domain.Category),
		products:   products,
	}
}

var _ domain.CategoryRepository = (*InMemoryCategoryRepository)(nil)

func (s *InMemoryCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok || !c.IsActive {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.order))
	for _, id := range s.order {
		if c := s.categories[id]; c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *InMemoryCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(name)
	for _, id := range s.order {
		c := s.categories[id]
		if c.IsActive && strings.ToLower(c.Name) == needle {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *InMemoryCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[category.ID] = *category
	s.order = append(s.order, category.ID)
	return nil
}

func (s *InMemoryCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[category.ID] = *category
	return nil
}

func (s *InMemoryCategoryRepository) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok || !c.IsActive {
		return domain.ErrNotFound
	}
	c.Deactivate()
	s.categories[id] = c
	return nil
}

func (s *InMemoryCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	return ok && c.IsActive, nil
}

func (s *InMemoryCategoryRepository) HasProducts(ctx context.Context, categoryID string) (bool, error) {
	if s.products == nil {
		return false, nil
	}
	products, err := s.products.FindByCategory(ctx, categoryID)
	if err != nil {
		return false, err
	}
	return len(products) > 0, nil
}

package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultLowStockThreshold is the stock level below which a product is
// considered low on stock.
const DefaultLowStockThreshold = 10

// Product represents a catalog product. Stock and pricing state are
// owned by the product itself; the category is referenced by id.
type Product struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Name          string    `gorm:"size:200;not null;index"`
	Description   string    `gorm:"size:1000;not null"`
	Price         float64   `gorm:"not null"`
	CategoryID    string    `gorm:"size:36;not null;index"`
	StockQuantity int       `gorm:"not null;default:0"`
	ImageURL      string    `gorm:"size:500"`
	SKU           string    `gorm:"size:64;uniqueIndex"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// NewProduct constructs an active product, generating an id and, when
// sku is empty, a SKU code. Category existence is a cross-entity rule
// enforced by the command handler.
func NewProduct(name, description string, price float64, categoryID string, stockQuantity int, imageURL, sku string) (*Product, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}
	if stockQuantity < 0 {
		return nil, fmt.Errorf("%w: stock quantity cannot be negative", ErrInvalidArgument)
	}

	if sku == "" {
		sku = generateSKU()
	}

	now := time.Now().UTC()
	return &Product{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		Price:         price,
		CategoryID:    categoryID,
		StockQuantity: stockQuantity,
		ImageURL:      imageURL,
		SKU:           sku,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsLowStock reports whether stock is below the default threshold.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity < DefaultLowStockThreshold
}

// IsOutOfStock reports whether the product has no stock left.
func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity <= 0
}

// TotalStockValue is price times quantity on hand.
func (p *Product) TotalStockValue() float64 {
	return p.Price * float64(p.StockQuantity)
}

// Update mutates the descriptive fields and the category reference.
// Price is re-validated; stock is untouched.
func (p *Product) Update(name, description string, price float64, categoryID, imageURL string) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.CategoryID = categoryID
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStock replaces the stock quantity with an absolute value.
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", ErrInvalidArgument)
	}

	p.StockQuantity = quantity
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// AddStock increases stock by a positive amount.
func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}

	p.StockQuantity += quantity
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveStock decreases stock by a positive amount, never below zero.
func (p *Product) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	if quantity > p.StockQuantity {
		return fmt.Errorf("%w: available %d", ErrInsufficientStock, p.StockQuantity)
	}

	p.StockQuantity -= quantity
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deletes the product.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
}

// Activate reverses a soft delete.
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now().UTC()
}

// generateSKU produces a code of the form SKU-20260102-0A1B2C3D.
func generateSKU() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("SKU-%s-%s", date, suffix)
}

// ProductRepository defines the contract for product persistence.
// All reads are scoped to active products.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]Product, error)
	// SearchByName performs case-insensitive substring matching on name.
	SearchByName(ctx context.Context, term string) ([]Product, error)
	// FindLowStock returns active products with stock below threshold.
	FindLowStock(ctx context.Context, threshold int) ([]Product, error)
	// FindPaged returns the 1-indexed page slice. Pages past the end
	// yield an empty slice, not an error.
	FindPaged(ctx context.Context, page, pageSize int) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	// Delete deactivates the product. It returns ErrNotFound when the
	// id does not resolve to an active product.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	// TotalStockValue sums price times stock over all active products.
	TotalStockValue(ctx context.Context) (float64, error)
}

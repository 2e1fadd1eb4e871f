package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category groups products. Deletion is a soft deactivation; inactive
// categories are excluded from all normal reads.
type Category struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"size:100;not null;index"`
	Description string    `gorm:"size:500;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// NewCategory constructs an active category with a generated identifier.
// Name uniqueness is a cross-entity rule enforced by the command handler.
func NewCategory(name, description string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update mutates name and description and stamps the update time.
func (c *Category) Update(name, description string) {
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now().UTC()
}

// Deactivate soft-deletes the category.
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now().UTC()
}

// Activate reverses a soft delete.
func (c *Category) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now().UTC()
}

// CategoryRepository defines the contract for category persistence.
// All reads are scoped to active categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	// FindByName matches the name case-insensitively; it returns
	// ErrNotFound when no active category holds the name.
	FindByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	// Delete deactivates the category. It returns ErrNotFound when the
	// id does not resolve to an active category.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// HasProducts reports whether any active product references the category.
	HasProducts(ctx context.Context, categoryID string) (bool, error)
}

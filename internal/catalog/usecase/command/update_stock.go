package command

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// UpdateStockCommand sets the stock level to an absolute quantity
type UpdateStockCommand struct {
	ID       string
	Quantity int
}

// UpdateStockHandler handles stock update command
type UpdateStockHandler struct {
	products domain.ProductRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(products domain.ProductRepository) *UpdateStockHandler {
	return &UpdateStockHandler{products: products}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*domain.Product, error) {
	product, err := h.products.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := product.SetStock(cmd.Quantity); err != nil {
		return nil, err
	}

	if err := h.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return product, nil
}

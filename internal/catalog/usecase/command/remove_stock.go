package command

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// RemoveStockCommand decreases the stock level by a positive amount
type RemoveStockCommand struct {
	ID       string
	Quantity int
}

// RemoveStockHandler handles stock decrease command
type RemoveStockHandler struct {
	products domain.ProductRepository
}

// NewRemoveStockHandler creates a new remove stock handler
func NewRemoveStockHandler(products domain.ProductRepository) *RemoveStockHandler {
	return &RemoveStockHandler{products: products}
}

// Handle executes the remove stock command. Removing more than the
// current quantity fails with an insufficient-stock error.
func (h *RemoveStockHandler) Handle(ctx context.Context, cmd RemoveStockCommand) (*domain.Product, error) {
	product, err := h.products.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := product.RemoveStock(cmd.Quantity); err != nil {
		return nil, err
	}

	if err := h.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to remove stock: %w", err)
	}

	return product, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/shelfwise/catalog-service/internal/catalog/domain"
)

// AddStockCommand increases the stock level by a positive amount
type AddStockCommand struct {
	ID       string
	Quantity int
}

// AddStockHandler handles stock increase command
type AddStockHandler struct {
	products domain.ProductRepository
}

// NewAddStockHandler creates a new add stock handler
func NewAddStockHandler(products domain.ProductRepository) *AddStockHandler {
	return &AddStockHandler{products: products}
}

// Handle executes the add stock command
func (h *AddStockHandler) Handle(ctx context.Context, cmd AddStockCommand) (*domain.Product, error) {
	product, err := h.products.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := product.AddStock(cmd.Quantity); err != nil {
		return nil, err
	}

	if err := h.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to add stock: %w", err)
	}

	return product, nil
}

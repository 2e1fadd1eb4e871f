package kafka

import "time"

// Topics carrying catalog lifecycle events
const (
	TopicProductCreated = "catalog.product.created"
	TopicStockChanged   = "catalog.product.stock-changed"
	TopicProductDeleted = "catalog.product.deleted"
)

// Event types
const (
	EventTypeProductCreated = "product.created"
	EventTypeStockChanged   = "product.stock_changed"
	EventTypeProductDeleted = "product.deleted"
)

// ProductCreatedEvent is published after a product is persisted
type ProductCreatedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	Timestamp     time.Time `json:"timestamp"`
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	CategoryID    string    `json:"category_id"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
}

// StockChangedEvent is published after any stock mutation succeeds
type StockChangedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	Timestamp     time.Time `json:"timestamp"`
	ProductID     string    `json:"product_id"`
	SKU           string    `json:"sku"`
	StockQuantity int       `json:"stock_quantity"`
}

// ProductDeletedEvent is published after a product is deactivated
type ProductDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	ProductID string    `json:"product_id"`
}

package http

// Request shapes. Validation tags cover input-shape constraints; the
// cross-entity rules live in the command handlers.

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

type updateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

type createProductRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required,max=1000"`
	Price         float64 `json:"price" validate:"gte=0"`
	CategoryID    string  `json:"category_id" validate:"required"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string  `json:"image_url" validate:"omitempty,http_url"`
	SKU           string  `json:"sku" validate:"omitempty,max=64"`
}

type updateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=1000"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,http_url"`
}

type updateStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type adjustStockRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

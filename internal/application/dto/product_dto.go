package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	WineType string          `json:"wine_type" validate:"required"`
	Vintage  int             `json:"vintage"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	WineType *string          `json:"wine_type"`
	Vintage  *int             `json:"vintage"`
	Price    *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	WineType           string          `json:"wine_type"`
	Vintage            int             `json:"vintage,omitempty"`
	Price              decimal.Decimal `json:"price"`
	TotalStockQuantity int64           `json:"total_stock_quantity"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

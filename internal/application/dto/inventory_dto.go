package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// warehouse_id es opcional: sin él se usa la bodega por defecto (MAIN-STORE).
type RegisterMovementRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Type        string `json:"type"` // entrada, saida, ajuste
	Quantity    int64  `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
}

// MovementResponse entrada del libro ya registrada, con nombres resueltos para mostrar.
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	WarehouseID     string    `json:"warehouse_id"`
	WarehouseCode   string    `json:"warehouse_code,omitempty"`
	Type            string    `json:"type"`
	Quantity        int64     `json:"quantity"`
	Reason          string    `json:"reason,omitempty"`
	CurrentQuantity int64     `json:"current_quantity"` // total del producto tras esta entrada
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CurrentStockItem stock actual de un producto para el listado del back office.
type CurrentStockItem struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	WineType        string          `json:"wine_type"`
	Vintage         int             `json:"vintage,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CurrentQuantity int64           `json:"current_quantity"`
}

// CurrentStockResponse listado de stock actual.
type CurrentStockResponse struct {
	Items []CurrentStockItem `json:"items"`
	Page  PageResponse       `json:"page"`
}

// WarehouseStockItem stock de un producto en una bodega concreta.
type WarehouseStockItem struct {
	WarehouseID      string    `json:"warehouse_id"`
	WarehouseCode    string    `json:"warehouse_code"`
	WarehouseName    string    `json:"warehouse_name"`
	QuantityOnHand   int64     `json:"quantity_on_hand"`
	QuantityReserved int64     `json:"quantity_reserved"`
	MinLevel         int64     `json:"min_level"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// WarehouseStockResponse desglose por bodega del stock de un producto.
type WarehouseStockResponse struct {
	ProductID string               `json:"product_id"`
	Items     []WarehouseStockItem `json:"items"`
}

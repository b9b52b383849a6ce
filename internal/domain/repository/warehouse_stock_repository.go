package repository

import (
	"context"
	"time"

	"github.com/vinoteca/cavastock/internal/domain/entity"
)

// StockByWarehouse resultado crudo del stock de un producto desglosado por bodega.
// Lo produce la DB con el join a warehouses; el use case lo convierte en DTO.
type StockByWarehouse struct {
	WarehouseID      string
	WarehouseCode    string
	WarehouseName    string
	QuantityOnHand   int64
	QuantityReserved int64
	MinLevel         int64
	UpdatedAt        time.Time
}

// WarehouseStockRepository define el puerto para el stock por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia con el libro.
type WarehouseStockRepository interface {
	// Get devuelve la fila actual o una fila en cero si no existe aún (sin persistirla).
	Get(ctx context.Context, productID, warehouseID string) (*entity.WarehouseStock, error)
	// GetForUpdate igual que Get pero bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.WarehouseStock, error)
	Upsert(ctx context.Context, stock *entity.WarehouseStock) error
	ListByProduct(ctx context.Context, productID string) ([]StockByWarehouse, error)
}

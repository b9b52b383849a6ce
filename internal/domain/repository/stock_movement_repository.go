package repository

import (
	"context"
	"time"

	"github.com/vinoteca/cavastock/internal/domain/entity"
)

// MovementRecord entrada del libro enriquecida con los nombres de producto y tipo
// de movimiento (resueltos por la DB en el join, para los listados de consulta).
type MovementRecord struct {
	ID               string
	ProductID        string
	ProductName      string
	WarehouseID      string
	WarehouseCode    string
	MovementTypeName string
	Quantity         int64
	Reason           string
	CurrentQuantity  int64
	CreatedAt        time.Time
}

// StockMovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListRecent devuelve las últimas entradas, más recientes primero.
	ListRecent(ctx context.Context, limit int) ([]MovementRecord, error)
	// ListByProduct devuelve las entradas de un producto en orden de creación
	// (reproducir sus deltas desde cero reconstruye el total actual).
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]MovementRecord, error)
}

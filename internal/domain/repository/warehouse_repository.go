package repository

import (
	"context"

	"github.com/vinoteca/cavastock/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	// GetByID devuelve nil, nil si la bodega no existe.
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	GetByCode(ctx context.Context, code string) (*entity.Warehouse, error)
	// EnsureDefault devuelve la bodega por defecto (MAIN-STORE), creándola de forma
	// idempotente en el primer uso: insert con ON CONFLICT sobre code y re-select,
	// para que dos primeras llamadas concurrentes no dupliquen la fila.
	EnsureDefault(ctx context.Context) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
}

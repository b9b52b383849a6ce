package inventory

import (
	"context"

	"github.com/vinoteca/cavastock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de inventario: cualquier error
// de fn revierte todos los escritos de la unidad de trabajo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		typeRepo repository.MovementTypeRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.WarehouseStockRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinoteca/cavastock/internal/application/dto"
	"github.com/vinoteca/cavastock/internal/domain"
	"github.com/vinoteca/cavastock/internal/domain/entity"
	"github.com/vinoteca/cavastock/internal/domain/repository"
	"github.com/vinoteca/cavastock/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional:
// resuelve tipo y bodega, bloquea producto y fila de stock (SELECT FOR UPDATE, en ese
// orden fijo para evitar deadlocks), aplica el delta a los dos agregados y anexa la
// entrada al libro, todo con Commit/Rollback en una sola unidad de trabajo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, log: log}
}

// MovementInput entrada para registrar un movimiento. WarehouseID vacío usa la
// bodega por defecto. Quantity es la magnitud (> 0); la dirección la decide el tipo.
type MovementInput struct {
	ProductID    string
	WarehouseID  string
	MovementType string
	Quantity     int64
	Reason       string
}

// RegisterMovement ejecuta los pasos del motor como unidad atómica y devuelve la
// entrada del libro con los nombres de producto y tipo resueltos para mostrar.
// Reintentos son responsabilidad del caller y no son idempotentes: reenviar la
// misma petición produce una segunda entrada y un segundo delta.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*dto.MovementResponse, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	typeName := entity.NormalizeMovementName(input.MovementType)
	if typeName == "" || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		typeRepo repository.MovementTypeRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.WarehouseStockRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		movType, err := typeRepo.GetOrCreate(ctx, typeName)
		if err != nil {
			return err
		}
		warehouse, err := uc.resolveWarehouse(ctx, warehouseRepo, input.WarehouseID)
		if err != nil {
			return err
		}

		// Lock en orden fijo: primero producto, luego fila de stock. Dos llamadas
		// concurrentes sobre el mismo par serializan aquí; pares distintos no se bloquean.
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		stock, err := stockRepo.GetForUpdate(ctx, product.ID, warehouse.ID)
		if err != nil {
			return err
		}

		direction := entity.MovementDirection(movType.Name)
		if direction < 0 {
			if stock.QuantityOnHand < input.Quantity || product.TotalStockQuantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
		}

		newOnHand := stock.QuantityOnHand + direction*input.Quantity
		newTotal := product.TotalStockQuantity + direction*input.Quantity
		if newOnHand < 0 || newTotal < 0 {
			// No debería ocurrir con los locks de arriba: se escala como anomalía.
			uc.log.Error().
				Str("product_id", product.ID).
				Str("warehouse_id", warehouse.ID).
				Str("type", movType.Name).
				Int64("quantity", input.Quantity).
				Int64("on_hand", stock.QuantityOnHand).
				Int64("total", product.TotalStockQuantity).
				Msg("guarda de stock negativo disparada pese a los locks de fila")
			return domain.ErrNegativeStock
		}

		now := time.Now()
		stock.QuantityOnHand = newOnHand
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}
		if err := productRepo.UpdateTotalStock(ctx, product.ID, newTotal); err != nil {
			return err
		}

		movement := &entity.StockMovement{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			WarehouseID:     warehouse.ID,
			MovementTypeID:  movType.ID,
			Quantity:        input.Quantity,
			Reason:          input.Reason,
			CurrentQuantity: newTotal,
			CreatedAt:       now,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}

		out = &dto.MovementResponse{
			ID:              movement.ID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			WarehouseID:     warehouse.ID,
			WarehouseCode:   warehouse.Code,
			Type:            movType.Name,
			Quantity:        movement.Quantity,
			Reason:          movement.Reason,
			CurrentQuantity: movement.CurrentQuantity,
			CreatedAt:       movement.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveWarehouse busca la bodega indicada o resuelve la bodega por defecto
// (creándola de forma idempotente en el primer uso) cuando no se indica ninguna.
func (uc *RegisterMovementUseCase) resolveWarehouse(ctx context.Context, warehouseRepo repository.WarehouseRepository, warehouseID string) (*entity.Warehouse, error) {
	if warehouseID == "" {
		return warehouseRepo.EnsureDefault(ctx)
	}
	warehouse, err := warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}
	return warehouse, nil
}

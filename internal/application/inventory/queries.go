package inventory

import (
	"context"

	"github.com/vinoteca/cavastock/internal/application/dto"
	"github.com/vinoteca/cavastock/internal/domain"
	"github.com/vinoteca/cavastock/internal/domain/repository"
)

// Límites del listado de movimientos recientes.
const (
	defaultMovementsLimit = 20
	maxMovementsLimit     = 100
)

// QueryUseCase consultas de solo lectura del inventario para el back office:
// stock actual por producto, movimientos recientes y desglose por bodega.
type QueryUseCase struct {
	productRepo  repository.ProductRepository
	stockRepo    repository.WarehouseStockRepository
	movementRepo repository.StockMovementRepository
}

// NewQueryUseCase construye el caso de uso con repositorios atados al pool (sin tx).
func NewQueryUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.WarehouseStockRepository,
	movementRepo repository.StockMovementRepository,
) *QueryUseCase {
	return &QueryUseCase{productRepo: productRepo, stockRepo: stockRepo, movementRepo: movementRepo}
}

// CurrentStock lista el stock actual de los productos: id, nombre, tipo, precio y
// el total denormalizado mantenido por el motor de movimientos.
func (uc *QueryUseCase) CurrentStock(ctx context.Context, limit, offset int) (*dto.CurrentStockResponse, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	products, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrentStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.CurrentStockItem{
			ProductID:       p.ID,
			Name:            p.Name,
			WineType:        p.WineType,
			Vintage:         p.Vintage,
			Price:           p.Price,
			CurrentQuantity: p.TotalStockQuantity,
		})
	}
	return &dto.CurrentStockResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RecentMovements devuelve las últimas entradas del libro, más recientes primero,
// con nombres de producto y tipo resueltos. limit <= 0 usa 20; tope 100.
func (uc *QueryUseCase) RecentMovements(ctx context.Context, limit int) (*dto.MovementListResponse, error) {
	limit = clampLimit(limit)
	records, err := uc.movementRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{
		Items: toMovementResponses(records),
		Page:  dto.PageResponse{Limit: limit, Total: len(records)},
	}, nil
}

// ProductMovements devuelve el historial de un producto en orden de creación.
func (uc *QueryUseCase) ProductMovements(ctx context.Context, productID string, limit, offset int) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	records, err := uc.movementRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{
		Items: toMovementResponses(records),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ProductWarehouseStock devuelve el stock de un producto desglosado por bodega.
func (uc *QueryUseCase) ProductWarehouseStock(ctx context.Context, productID string) (*dto.WarehouseStockResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	rows, err := uc.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseStockItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.WarehouseStockItem{
			WarehouseID:      r.WarehouseID,
			WarehouseCode:    r.WarehouseCode,
			WarehouseName:    r.WarehouseName,
			QuantityOnHand:   r.QuantityOnHand,
			QuantityReserved: r.QuantityReserved,
			MinLevel:         r.MinLevel,
			UpdatedAt:        r.UpdatedAt,
		})
	}
	return &dto.WarehouseStockResponse{ProductID: productID, Items: items}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultMovementsLimit
	}
	if limit > maxMovementsLimit {
		return maxMovementsLimit
	}
	return limit
}

func toMovementResponses(records []repository.MovementRecord) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.MovementResponse{
			ID:              r.ID,
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			WarehouseID:     r.WarehouseID,
			WarehouseCode:   r.WarehouseCode,
			Type:            r.MovementTypeName,
			Quantity:        r.Quantity,
			Reason:          r.Reason,
			CurrentQuantity: r.CurrentQuantity,
			CreatedAt:       r.CreatedAt,
		})
	}
	return items
}

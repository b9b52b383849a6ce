package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinoteca/cavastock/internal/domain/entity"
	"github.com/vinoteca/cavastock/internal/domain/repository"
)

var _ repository.WarehouseStockRepository = (*WarehouseStockRepo)(nil)

// WarehouseStockRepo implementación del stock por producto+bodega sobre PostgreSQL
// (usable con pool o tx).
type WarehouseStockRepo struct {
	q Querier
}

// NewWarehouseStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseStockRepository(q Querier) *WarehouseStockRepo {
	return &WarehouseStockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una bodega. Si la fila no existe
// aún devuelve una fila en cero sin persistirla.
func (r *WarehouseStockRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.WarehouseStock, error) {
	return r.get(ctx, productID, warehouseID, "")
}

// GetForUpdate igual que Get pero bloqueando la fila (SELECT FOR UPDATE). Sobre una
// fila aún inexistente no hay nada que bloquear: la serialización la da el lock del
// producto, que el motor toma siempre antes que este.
func (r *WarehouseStockRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.WarehouseStock, error) {
	return r.get(ctx, productID, warehouseID, " FOR UPDATE")
}

func (r *WarehouseStockRepo) get(ctx context.Context, productID, warehouseID, suffix string) (*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity_on_hand, quantity_reserved, min_level, updated_at
		FROM warehouse_stock WHERE product_id = $1 AND warehouse_id = $2` + suffix
	var s entity.WarehouseStock
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.QuantityOnHand, &s.QuantityReserved, &s.MinLevel, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get warehouse stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila de stock del par producto-bodega.
func (r *WarehouseStockRepo) Upsert(ctx context.Context, stock *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_stock (product_id, warehouse_id, quantity_on_hand, quantity_reserved, min_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity_on_hand = EXCLUDED.quantity_on_hand,
		              quantity_reserved = EXCLUDED.quantity_reserved,
		              min_level = EXCLUDED.min_level,
		              updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		stock.ProductID, stock.WarehouseID, stock.QuantityOnHand, stock.QuantityReserved, stock.MinLevel,
	)
	if err != nil {
		return fmt.Errorf("upsert warehouse stock: %w", err)
	}
	return nil
}

// ListByProduct devuelve el stock de un producto desglosado por bodega (join con warehouses).
func (r *WarehouseStockRepo) ListByProduct(ctx context.Context, productID string) ([]repository.StockByWarehouse, error) {
	query := `
		SELECT s.warehouse_id, w.code, w.name, s.quantity_on_hand, s.quantity_reserved, s.min_level, s.updated_at
		FROM warehouse_stock s
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE s.product_id = $1
		ORDER BY w.code`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	var list []repository.StockByWarehouse
	for rows.Next() {
		var s repository.StockByWarehouse
		if err := rows.Scan(&s.WarehouseID, &s.WarehouseCode, &s.WarehouseName,
			&s.QuantityOnHand, &s.QuantityReserved, &s.MinLevel, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock by warehouse: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

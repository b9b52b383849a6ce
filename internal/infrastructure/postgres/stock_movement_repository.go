package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vinoteca/cavastock/internal/domain/entity"
	"github.com/vinoteca/cavastock/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro nunca se actualiza ni borra.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create anexa una entrada al libro.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, warehouse_id, movement_type_id, quantity, reason, current_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.WarehouseID, movement.MovementTypeID,
		movement.Quantity, reason, movement.CurrentQuantity, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

const movementRecordColumns = `
	m.id, m.product_id, p.name, m.warehouse_id, w.code, t.name,
	m.quantity, m.reason, m.current_quantity, m.created_at`

const movementRecordJoins = `
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	JOIN warehouses w ON w.id = m.warehouse_id
	JOIN movement_types t ON t.id = m.movement_type_id`

// ListRecent devuelve las últimas entradas del libro, más recientes primero,
// con nombres de producto y tipo resueltos.
func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]repository.MovementRecord, error) {
	query := `SELECT` + movementRecordColumns + movementRecordJoins + `
	ORDER BY m.created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	return scanMovementRecords(rows)
}

// ListByProduct devuelve las entradas de un producto en orden de creación
// (soportado por el índice sobre product_id, created_at).
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]repository.MovementRecord, error) {
	query := `SELECT` + movementRecordColumns + movementRecordJoins + `
	WHERE m.product_id = $1
	ORDER BY m.created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return scanMovementRecords(rows)
}

func scanMovementRecords(rows pgx.Rows) ([]repository.MovementRecord, error) {
	defer rows.Close()
	var list []repository.MovementRecord
	for rows.Next() {
		var m repository.MovementRecord
		var reason *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.WarehouseID, &m.WarehouseCode,
			&m.MovementTypeName, &m.Quantity, &reason, &m.CurrentQuantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if reason != nil {
			m.Reason = *reason
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

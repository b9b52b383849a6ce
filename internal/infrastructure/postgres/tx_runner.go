package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vinoteca/cavastock/internal/application/inventory"
	"github.com/vinoteca/cavastock/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o
// Rollback. Los locks SELECT FOR UPDATE que tomen los repos viven hasta el cierre
// de la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	typeRepo repository.MovementTypeRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.WarehouseStockRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	typeRepo := NewMovementTypeRepository(tx)
	warehouseRepo := NewWarehouseRepository(tx)
	productRepo := NewProductRepository(tx)
	stockRepo := NewWarehouseStockRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(typeRepo, warehouseRepo, productRepo, stockRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

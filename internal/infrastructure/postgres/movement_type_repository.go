package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vinoteca/cavastock/internal/domain/entity"
	"github.com/vinoteca/cavastock/internal/domain/repository"
)

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo implementación del registro de tipos de movimiento sobre PostgreSQL.
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// GetOrCreate resuelve un nombre normalizado a su fila canónica. Insert perezoso
// con ON CONFLICT (name) DO NOTHING y re-select: dos llamadas concurrentes con el
// mismo nombre nuevo resuelven a una sola fila.
func (r *MovementTypeRepo) GetOrCreate(ctx context.Context, normalizedName string) (*entity.MovementType, error) {
	insert := `
		INSERT INTO movement_types (id, name, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO NOTHING`
	_, err := r.q.Exec(ctx, insert, uuid.New().String(), normalizedName)
	if err != nil {
		return nil, fmt.Errorf("insert movement type: %w", err)
	}

	var mt entity.MovementType
	err = r.q.QueryRow(ctx,
		`SELECT id, name, created_at FROM movement_types WHERE name = $1`,
		normalizedName,
	).Scan(&mt.ID, &mt.Name, &mt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	return &mt, nil
}

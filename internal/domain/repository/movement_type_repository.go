package repository

import (
	"context"

	"github.com/vinoteca/cavastock/internal/domain/entity"
)

// MovementTypeRepository define el puerto del registro de tipos de movimiento.
type MovementTypeRepository interface {
	// GetOrCreate resuelve un nombre ya normalizado a su fila canónica, creándola
	// si no existe. Debe ser seguro bajo concurrencia para un mismo nombre nuevo:
	// la unicidad sobre name garantiza una sola fila canónica.
	GetOrCreate(ctx context.Context, normalizedName string) (*entity.MovementType, error)
}

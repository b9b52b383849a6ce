package repository

import (
	"context"

	"github.com/vinoteca/cavastock/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateTotalStock existen para el motor de inventario: el total
// denormalizado solo se muta bajo lock de fila, dentro de una transacción.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateTotalStock actualiza solo el contador denormalizado (usado por el motor de inventario).
	UpdateTotalStock(ctx context.Context, productID string, total int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}

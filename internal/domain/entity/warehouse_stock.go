package entity

import "time"

// WarehouseStock representa el stock actual de un producto en una bodega
// (una fila por par producto-bodega, creada con el primer movimiento que la toca).
// QuantityOnHand nunca puede quedar negativa.
type WarehouseStock struct {
	ProductID        string
	WarehouseID      string
	QuantityOnHand   int64
	QuantityReserved int64
	MinLevel         int64
	UpdatedAt        time.Time
}

package entity

import "time"

// StockMovement es una entrada del libro de movimientos: append-only e inmutable.
// Quantity es siempre la magnitud (> 0); la dirección se deriva del tipo de
// movimiento, no se guarda aparte. CurrentQuantity es la foto del total del
// producto inmediatamente después de aplicar esta entrada: reproducir las
// entradas de un producto en orden de creación reconstruye el total desde cero.
type StockMovement struct {
	ID              string
	ProductID       string
	WarehouseID     string
	MovementTypeID  string
	Quantity        int64
	Reason          string // opcional; vacío = sin motivo
	CurrentQuantity int64
	CreatedAt       time.Time
}

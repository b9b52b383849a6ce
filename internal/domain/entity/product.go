package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un vino del catálogo. El catálogo (nombre, tipo, añada, precio)
// lo administra el back office; TotalStockQuantity es un contador denormalizado que
// solo muta el motor de inventario, en la misma transacción que el stock por bodega.
type Product struct {
	ID                 string
	Name               string
	WineType           string // tinto, blanco, rosado, espumoso
	Vintage            int
	Price              decimal.Decimal
	TotalStockQuantity int64 // suma de quantity_on_hand en todas las bodegas (mantenida por convención, no recalculada)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package entity

import "time"

// Código y nombre de la bodega por defecto, creada de forma perezosa la primera vez
// que se registra un movimiento sin bodega explícita.
const (
	DefaultWarehouseCode = "MAIN-STORE"
	DefaultWarehouseName = "Bodega principal"
)

// Warehouse representa una bodega donde se almacena inventario. El código es único
// e inmutable una vez creada; solo el nombre puede cambiar.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrNegativeStock es la guarda de último recurso: con los locks de fila en
	// orden fijo no debería dispararse nunca; si ocurre indica un bug de
	// consistencia y se escala en el log en vez de manejarse en silencio.
	ErrNegativeStock = errors.New("el stock resultante sería negativo")
)

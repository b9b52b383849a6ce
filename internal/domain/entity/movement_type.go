package entity

import (
	"strings"
	"time"
)

// Nombres canónicos de los tipos de movimiento. Son datos, no API: la tabla
// movement_types se puebla de forma perezosa con el primer uso de cada nombre.
const (
	MovementTypeEntrada = "entrada" // ingreso de mercancía
	MovementTypeSaida   = "saida"   // salida (venta, merma)
	MovementTypeAjuste  = "ajuste"  // solo incrementa stock (inventario encontrado)
)

// MovementType representa un tipo de movimiento de inventario. Filas estables:
// se crean una vez con el primer uso del nombre y nunca se borran.
type MovementType struct {
	ID        string
	Name      string // normalizado en minúsculas, único
	CreatedAt time.Time
}

// NormalizeMovementName normaliza un nombre de tipo de movimiento para búsqueda
// y almacenamiento: minúsculas y sin espacios en los extremos.
func NormalizeMovementName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MovementDirection deriva la dirección del movimiento a partir del nombre
// normalizado: saida resta stock; entrada, ajuste y cualquier otro nombre suman.
// El ajuste nunca decrementa: una corrección hacia abajo requiere una saida explícita.
func MovementDirection(normalizedName string) int64 {
	if normalizedName == MovementTypeSaida {
		return -1
	}
	return 1
}

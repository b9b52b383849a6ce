package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMovementName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"entrada", "entrada"},
		{"  ENTRADA ", "entrada"},
		{"Saida", "saida"},
		{"\tajuste\n", "ajuste"},
		{"Devolucion", "devolucion"},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeMovementName(c.in), "entrada: %q", c.in)
	}
}

func TestMovementDirection(t *testing.T) {
	assert.Equal(t, int64(1), MovementDirection(MovementTypeEntrada))
	assert.Equal(t, int64(-1), MovementDirection(MovementTypeSaida))

	// el ajuste solo incrementa; corregir hacia abajo exige una saida explícita
	assert.Equal(t, int64(1), MovementDirection(MovementTypeAjuste))

	// cualquier nombre desconocido suma stock
	assert.Equal(t, int64(1), MovementDirection("devolucion"))
}

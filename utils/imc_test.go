package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularIMC(t *testing.T) {
	t.Parallel()

	imc, err := CalcularIMC(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, imc, 0.01)
}

func TestCalcularIMCInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		altura float64
		peso   float64
	}{
		{"zero altura", 0, 70},
		{"zero peso", 175, 0},
		{"negative", -175, 70},
		{"altura out of range", 300, 70},
		{"peso out of range", 175, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalcularIMC(tc.altura, tc.peso)
			assert.Error(t, err)
		})
	}
}

func TestCategoriaIMC(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bajo peso", CategoriaIMC(17))
	assert.Equal(t, "Peso normal", CategoriaIMC(22))
	assert.Equal(t, "Sobrepeso", CategoriaIMC(27))
	assert.Equal(t, "Obesidad grado I", CategoriaIMC(32))
	assert.Equal(t, "Obesidad grado II", CategoriaIMC(37))
	assert.Equal(t, "Obesidad grado III", CategoriaIMC(45))
}

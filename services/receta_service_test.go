package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eabaitua/Nutriox-app/mocks"
	"github.com/Eabaitua/Nutriox-app/services"
)

func TestRecetaCreatePreservesIngredientOrder(t *testing.T) {
	t.Parallel()
	svc := services.NewRecetaService(mocks.NewRecetaRepo())

	ingredientes := []string{"tomate", "aceite", "pan"}
	receta, err := svc.Create(services.RecetaInput{
		Nombre:       "Pan con tomate",
		Ingredientes: ingredientes,
		Calorias:     220,
		UsuarioID:    uuid.NewString(),
	})
	require.NoError(t, err)
	assert.Equal(t, ingredientes, receta.Ingredientes)
}

func TestRecetaListByUsuario(t *testing.T) {
	t.Parallel()
	svc := services.NewRecetaService(mocks.NewRecetaRepo())

	duena := uuid.NewString()
	otra := uuid.NewString()

	for _, in := range []services.RecetaInput{
		{Nombre: "Gazpacho", Ingredientes: []string{"tomate"}, Calorias: 120, UsuarioID: duena},
		{Nombre: "Tortilla", Ingredientes: []string{"huevo", "patata"}, Calorias: 350, UsuarioID: duena},
		{Nombre: "Ensalada", Ingredientes: []string{"lechuga"}, Calorias: 90, UsuarioID: otra},
	} {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	recetas, err := svc.ListByUsuario(duena)
	require.NoError(t, err)
	assert.Len(t, recetas, 2)
}

// Ingredient updates replace the list wholesale, never merge.
func TestRecetaUpdateReplacesIngredientes(t *testing.T) {
	t.Parallel()
	svc := services.NewRecetaService(mocks.NewRecetaRepo())

	receta, err := svc.Create(services.RecetaInput{
		Nombre:       "Tortilla",
		Ingredientes: []string{"huevo", "patata", "cebolla"},
		Calorias:     350,
		UsuarioID:    uuid.NewString(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(receta.ID, services.RecetaUpdate{
		Ingredientes: []string{"huevo", "patata"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"huevo", "patata"}, updated.Ingredientes)
	assert.Equal(t, "Tortilla", updated.Nombre)
	assert.Equal(t, 350.0, updated.Calorias)
}

func TestRecetaUpdatePartialLeavesIngredientes(t *testing.T) {
	t.Parallel()
	svc := services.NewRecetaService(mocks.NewRecetaRepo())

	receta, err := svc.Create(services.RecetaInput{
		Nombre:       "Tortilla",
		Ingredientes: []string{"huevo", "patata"},
		Calorias:     350,
		UsuarioID:    uuid.NewString(),
	})
	require.NoError(t, err)

	nombre := "Tortilla española"
	updated, err := svc.Update(receta.ID, services.RecetaUpdate{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Tortilla española", updated.Nombre)
	assert.Equal(t, []string{"huevo", "patata"}, updated.Ingredientes)
}

func TestRecetaDeleteNotFound(t *testing.T) {
	t.Parallel()
	svc := services.NewRecetaService(mocks.NewRecetaRepo())

	assert.ErrorIs(t, svc.Delete(uuid.NewString()), services.ErrRecetaNotFound)
}

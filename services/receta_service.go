package services

import (
	"errors"

	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/repositories"
)

var ErrRecetaNotFound = errors.New("receta no encontrada")

type RecetaInput struct {
	Nombre       string
	Ingredientes []string
	Calorias     float64
	UsuarioID    string
}

// RecetaUpdate is partial; Ingredientes, when present, replaces the whole
// list rather than merging element-wise.
type RecetaUpdate struct {
	Nombre       *string
	Ingredientes []string
	Calorias     *float64
}

type RecetaService struct {
	recetas repositories.RecetaRepository
}

func NewRecetaService(recetas repositories.RecetaRepository) *RecetaService {
	return &RecetaService{recetas: recetas}
}

func (s *RecetaService) Create(input RecetaInput) (*models.Receta, error) {
	receta := &models.Receta{
		Nombre:       input.Nombre,
		Ingredientes: input.Ingredientes,
		Calorias:     input.Calorias,
		UsuarioID:    input.UsuarioID,
	}
	if err := s.recetas.Create(receta); err != nil {
		return nil, err
	}
	return receta, nil
}

func (s *RecetaService) ListByUsuario(usuarioID string) ([]models.Receta, error) {
	return s.recetas.GetByUsuarioID(usuarioID)
}

func (s *RecetaService) Update(id string, input RecetaUpdate) (*models.Receta, error) {
	receta, err := s.recetas.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecetaNotFound
		}
		return nil, err
	}

	if input.Nombre != nil && *input.Nombre != "" {
		receta.Nombre = *input.Nombre
	}
	if input.Ingredientes != nil {
		receta.Ingredientes = input.Ingredientes
	}
	if input.Calorias != nil {
		receta.Calorias = *input.Calorias
	}

	if err := s.recetas.Update(receta); err != nil {
		return nil, err
	}
	return receta, nil
}

func (s *RecetaService) Delete(id string) error {
	err := s.recetas.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrRecetaNotFound
	}
	return err
}

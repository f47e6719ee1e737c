package services

import (
	"errors"

	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/repositories"
)

var (
	ErrDietaNotFound = errors.New("dieta no encontrada")
	ErrRecetaEnDieta = errors.New("la receta ya está en la dieta")
)

type DietaInput struct {
	Nombre      string
	Descripcion string
	Calorias    float64
	UsuarioID   string
}

// DietaCompleta is a Dieta with its receta references resolved to full
// records, in the diet's insertion order.
type DietaCompleta struct {
	models.Dieta
	Recetas []models.Receta `json:"recetas"`
}

type DietaService struct {
	dietas  repositories.DietaRepository
	recetas repositories.RecetaRepository
}

func NewDietaService(dietas repositories.DietaRepository, recetas repositories.RecetaRepository) *DietaService {
	return &DietaService{dietas: dietas, recetas: recetas}
}

func (s *DietaService) Create(input DietaInput) (*models.Dieta, error) {
	dieta := &models.Dieta{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Calorias:    input.Calorias,
		UsuarioID:   input.UsuarioID,
		Recetas:     []string{},
	}
	if err := s.dietas.Create(dieta); err != nil {
		return nil, err
	}
	return dieta, nil
}

func (s *DietaService) ListByUsuario(usuarioID string) ([]models.Dieta, error) {
	return s.dietas.GetByUsuarioID(usuarioID)
}

func (s *DietaService) Delete(id string) error {
	err := s.dietas.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrDietaNotFound
	}
	return err
}

// AddReceta rejects a receta already present in the dieta; idempotent
// re-adds are an error, not a no-op.
func (s *DietaService) AddReceta(dietaID, recetaID string) (*models.Dieta, error) {
	dieta, err := s.dietas.AddReceta(dietaID, recetaID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrDietaNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrRecetaEnDieta
		}
		return nil, err
	}
	return dieta, nil
}

// GetCompleta expands the dieta's receta references into full records.
// Deleting a receta leaves its id dangling in dietas that referenced it;
// dangling ids are omitted from the expansion rather than cleaned up.
func (s *DietaService) GetCompleta(dietaID string) (*DietaCompleta, error) {
	dieta, err := s.dietas.GetByID(dietaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDietaNotFound
		}
		return nil, err
	}

	recetas, err := s.recetas.GetByIDs(dieta.Recetas)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Receta, len(recetas))
	for _, r := range recetas {
		byID[r.ID] = r
	}

	resolved := make([]models.Receta, 0, len(dieta.Recetas))
	for _, id := range dieta.Recetas {
		if r, ok := byID[id]; ok {
			resolved = append(resolved, r)
		}
	}

	return &DietaCompleta{Dieta: *dieta, Recetas: resolved}, nil
}

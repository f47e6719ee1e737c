package services

import (
	"errors"

	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/repositories"
)

var (
	ErrAlimentoExists   = errors.New("el alimento ya existe")
	ErrAlimentoNotFound = errors.New("alimento no encontrado")
)

// AlimentoInput is a full create payload.
type AlimentoInput struct {
	Nombre        string
	Calorias      float64
	Proteinas     float64
	Grasas        float64
	Carbohidratos float64
}

// AlimentoUpdate carries a partial update. Pointer fields distinguish
// "absent" from a legitimate zero.
type AlimentoUpdate struct {
	Nombre        *string
	Calorias      *float64
	Proteinas     *float64
	Grasas        *float64
	Carbohidratos *float64
}

type AlimentoService struct {
	alimentos repositories.AlimentoRepository
}

func NewAlimentoService(alimentos repositories.AlimentoRepository) *AlimentoService {
	return &AlimentoService{alimentos: alimentos}
}

func (s *AlimentoService) Create(input AlimentoInput) (*models.Alimento, error) {
	alimento := &models.Alimento{
		Nombre:        input.Nombre,
		Calorias:      input.Calorias,
		Proteinas:     input.Proteinas,
		Grasas:        input.Grasas,
		Carbohidratos: input.Carbohidratos,
	}
	// The unique index on nombre is the authority here; no pre-check, so
	// concurrent creates cannot race past it.
	if err := s.alimentos.Create(alimento); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlimentoExists
		}
		return nil, err
	}
	return alimento, nil
}

func (s *AlimentoService) List() ([]models.Alimento, error) {
	return s.alimentos.GetAll()
}

func (s *AlimentoService) Get(id string) (*models.Alimento, error) {
	alimento, err := s.alimentos.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAlimentoNotFound
		}
		return nil, err
	}
	return alimento, nil
}

func (s *AlimentoService) Update(id string, input AlimentoUpdate) (*models.Alimento, error) {
	alimento, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Nombre != nil && *input.Nombre != "" {
		alimento.Nombre = *input.Nombre
	}
	if input.Calorias != nil {
		alimento.Calorias = *input.Calorias
	}
	if input.Proteinas != nil {
		alimento.Proteinas = *input.Proteinas
	}
	if input.Grasas != nil {
		alimento.Grasas = *input.Grasas
	}
	if input.Carbohidratos != nil {
		alimento.Carbohidratos = *input.Carbohidratos
	}

	if err := s.alimentos.Update(alimento); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlimentoExists
		}
		return nil, err
	}
	return alimento, nil
}

func (s *AlimentoService) Delete(id string) error {
	err := s.alimentos.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrAlimentoNotFound
	}
	return err
}

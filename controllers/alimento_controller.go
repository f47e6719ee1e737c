package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eabaitua/Nutriox-app/services"
)

type AlimentoController struct {
	alimentos *services.AlimentoService
}

func NewAlimentoController(alimentos *services.AlimentoService) *AlimentoController {
	return &AlimentoController{alimentos: alimentos}
}

type AlimentoCreateInput struct {
	Nombre        string   `json:"nombre" binding:"required"`
	Calorias      *float64 `json:"calorias" binding:"required"`
	Proteinas     *float64 `json:"proteinas" binding:"required"`
	Grasas        *float64 `json:"grasas" binding:"required"`
	Carbohidratos *float64 `json:"carbohidratos" binding:"required"`
}

// AlimentoUpdateInput is partial: nil means "leave it alone", so an
// explicit zero still applies.
type AlimentoUpdateInput struct {
	Nombre        *string  `json:"nombre" binding:"omitempty,min=1"`
	Calorias      *float64 `json:"calorias"`
	Proteinas     *float64 `json:"proteinas"`
	Grasas        *float64 `json:"grasas"`
	Carbohidratos *float64 `json:"carbohidratos"`
}

// Create handles POST /api/alimentos.
func (ctl *AlimentoController) Create(c *gin.Context) {
	var input AlimentoCreateInput
	if !bindJSON(c, &input) {
		return
	}

	alimento, err := ctl.alimentos.Create(services.AlimentoInput{
		Nombre:        input.Nombre,
		Calorias:      *input.Calorias,
		Proteinas:     *input.Proteinas,
		Grasas:        *input.Grasas,
		Carbohidratos: *input.Carbohidratos,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlimentoExists) {
			respondError(c, http.StatusBadRequest, "El alimento ya existe.")
			return
		}
		log.Printf("alimentos: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al crear el alimento.")
		return
	}

	respondData(c, http.StatusCreated, alimento)
}

// List handles GET /api/alimentos. No pagination.
func (ctl *AlimentoController) List(c *gin.Context) {
	alimentos, err := ctl.alimentos.List()
	if err != nil {
		log.Printf("alimentos: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al obtener los alimentos.")
		return
	}
	respondData(c, http.StatusOK, alimentos)
}

// Get handles GET /api/alimentos/:id.
func (ctl *AlimentoController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	alimento, err := ctl.alimentos.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAlimentoNotFound) {
			respondError(c, http.StatusNotFound, "Alimento no encontrado.")
			return
		}
		log.Printf("alimentos: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al obtener el alimento.")
		return
	}
	respondData(c, http.StatusOK, alimento)
}

// Update handles PUT /api/alimentos/:id.
func (ctl *AlimentoController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input AlimentoUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	alimento, err := ctl.alimentos.Update(id, services.AlimentoUpdate{
		Nombre:        input.Nombre,
		Calorias:      input.Calorias,
		Proteinas:     input.Proteinas,
		Grasas:        input.Grasas,
		Carbohidratos: input.Carbohidratos,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlimentoNotFound):
			respondError(c, http.StatusNotFound, "Alimento no encontrado.")
		case errors.Is(err, services.ErrAlimentoExists):
			respondError(c, http.StatusBadRequest, "El alimento ya existe.")
		default:
			log.Printf("alimentos: %v", err)
			respondError(c, http.StatusInternalServerError, "Error al actualizar el alimento.")
		}
		return
	}

	respondData(c, http.StatusOK, alimento)
}

// Delete handles DELETE /api/alimentos/:id.
func (ctl *AlimentoController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.alimentos.Delete(id); err != nil {
		if errors.Is(err, services.ErrAlimentoNotFound) {
			respondError(c, http.StatusNotFound, "Alimento no encontrado.")
			return
		}
		log.Printf("alimentos: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al eliminar el alimento.")
		return
	}

	respondMensaje(c, http.StatusOK, "Alimento eliminado correctamente.")
}

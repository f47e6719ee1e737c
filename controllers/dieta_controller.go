package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eabaitua/Nutriox-app/services"
)

type DietaController struct {
	dietas *services.DietaService
}

func NewDietaController(dietas *services.DietaService) *DietaController {
	return &DietaController{dietas: dietas}
}

type DietaCreateInput struct {
	Nombre      string   `json:"nombre" binding:"required"`
	Descripcion string   `json:"descripcion"`
	Calorias    *float64 `json:"calorias" binding:"required"`
	UsuarioID   string   `json:"usuarioId" binding:"required,uuid"`
}

type AddRecetaInput struct {
	RecetaID string `json:"recetaId" binding:"required,uuid"`
}

// Create handles POST /api/dietas. A new dieta starts with no recetas.
func (ctl *DietaController) Create(c *gin.Context) {
	var input DietaCreateInput
	if !bindJSON(c, &input) {
		return
	}

	dieta, err := ctl.dietas.Create(services.DietaInput{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Calorias:    *input.Calorias,
		UsuarioID:   input.UsuarioID,
	})
	if err != nil {
		log.Printf("dietas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al crear la dieta.")
		return
	}

	respondData(c, http.StatusCreated, dieta)
}

// ListByUsuario handles GET /api/dietas/:id, where the id is the owner's
// user id. The param shares its name with the completa route because gin
// requires one wildcard name per position in the GET tree.
func (ctl *DietaController) ListByUsuario(c *gin.Context) {
	usuarioID, ok := pathID(c, "id")
	if !ok {
		return
	}

	dietas, err := ctl.dietas.ListByUsuario(usuarioID)
	if err != nil {
		log.Printf("dietas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al obtener las dietas.")
		return
	}
	respondData(c, http.StatusOK, dietas)
}

// Delete handles DELETE /api/dietas/:id.
func (ctl *DietaController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.dietas.Delete(id); err != nil {
		if errors.Is(err, services.ErrDietaNotFound) {
			respondError(c, http.StatusNotFound, "Dieta no encontrada.")
			return
		}
		log.Printf("dietas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al eliminar la dieta.")
		return
	}

	respondMensaje(c, http.StatusOK, "Dieta eliminada correctamente.")
}

// AddReceta handles POST /api/dietas/:dietaId/recetas. Re-adding a receta
// is rejected, not silently accepted.
func (ctl *DietaController) AddReceta(c *gin.Context) {
	dietaID, ok := pathID(c, "dietaId")
	if !ok {
		return
	}

	var input AddRecetaInput
	if !bindJSON(c, &input) {
		return
	}

	dieta, err := ctl.dietas.AddReceta(dietaID, input.RecetaID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDietaNotFound):
			respondError(c, http.StatusNotFound, "Dieta no encontrada.")
		case errors.Is(err, services.ErrRecetaEnDieta):
			respondError(c, http.StatusBadRequest, "La receta ya está en la dieta.")
		default:
			log.Printf("dietas: %v", err)
			respondError(c, http.StatusInternalServerError, "Error al añadir la receta a la dieta.")
		}
		return
	}

	respondDataMensaje(c, http.StatusOK, dieta, "Receta añadida a la dieta correctamente.")
}

// GetCompleta handles GET /api/dietas/:id/completa, with receta references
// resolved to full records.
func (ctl *DietaController) GetCompleta(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dieta, err := ctl.dietas.GetCompleta(id)
	if err != nil {
		if errors.Is(err, services.ErrDietaNotFound) {
			respondError(c, http.StatusNotFound, "Dieta no encontrada.")
			return
		}
		log.Printf("dietas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al obtener la dieta.")
		return
	}

	respondData(c, http.StatusOK, dieta)
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eabaitua/Nutriox-app/services"
)

type RecetaController struct {
	recetas *services.RecetaService
}

func NewRecetaController(recetas *services.RecetaService) *RecetaController {
	return &RecetaController{recetas: recetas}
}

type RecetaCreateInput struct {
	Nombre       string   `json:"nombre" binding:"required"`
	Ingredientes []string `json:"ingredientes" binding:"required,min=1,dive,required"`
	Calorias     *float64 `json:"calorias" binding:"required"`
	UsuarioID    string   `json:"usuarioId" binding:"required,uuid"`
}

type RecetaUpdateInput struct {
	Nombre       *string  `json:"nombre" binding:"omitempty,min=1"`
	Ingredientes []string `json:"ingredientes" binding:"omitempty,min=1,dive,required"`
	Calorias     *float64 `json:"calorias"`
}

// Create handles POST /api/recetas. Ingredient order is preserved as sent.
func (ctl *RecetaController) Create(c *gin.Context) {
	var input RecetaCreateInput
	if !bindJSON(c, &input) {
		return
	}

	receta, err := ctl.recetas.Create(services.RecetaInput{
		Nombre:       input.Nombre,
		Ingredientes: input.Ingredientes,
		Calorias:     *input.Calorias,
		UsuarioID:    input.UsuarioID,
	})
	if err != nil {
		log.Printf("recetas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al crear la receta.")
		return
	}

	respondData(c, http.StatusCreated, receta)
}

// ListByUsuario handles GET /api/recetas/:usuarioId.
func (ctl *RecetaController) ListByUsuario(c *gin.Context) {
	usuarioID, ok := pathID(c, "usuarioId")
	if !ok {
		return
	}

	recetas, err := ctl.recetas.ListByUsuario(usuarioID)
	if err != nil {
		log.Printf("recetas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al obtener las recetas.")
		return
	}
	respondData(c, http.StatusOK, recetas)
}

// Update handles PUT /api/recetas/:id. A present ingredientes list
// replaces the stored one wholesale.
func (ctl *RecetaController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input RecetaUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	receta, err := ctl.recetas.Update(id, services.RecetaUpdate{
		Nombre:       input.Nombre,
		Ingredientes: input.Ingredientes,
		Calorias:     input.Calorias,
	})
	if err != nil {
		if errors.Is(err, services.ErrRecetaNotFound) {
			respondError(c, http.StatusNotFound, "Receta no encontrada.")
			return
		}
		log.Printf("recetas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al actualizar la receta.")
		return
	}

	respondData(c, http.StatusOK, receta)
}

// Delete handles DELETE /api/recetas/:id. Dietas that reference the
// receta keep the dangling id; the expanded view skips it.
func (ctl *RecetaController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.recetas.Delete(id); err != nil {
		if errors.Is(err, services.ErrRecetaNotFound) {
			respondError(c, http.StatusNotFound, "Receta no encontrada.")
			return
		}
		log.Printf("recetas: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al eliminar la receta.")
		return
	}

	respondMensaje(c, http.StatusOK, "Receta eliminada correctamente.")
}

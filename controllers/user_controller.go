package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eabaitua/Nutriox-app/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type PerfilInput struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=2"`
	Email  *string `json:"email" binding:"omitempty,email"`
}

type PasswordInput struct {
	PasswordActual string `json:"passwordActual" binding:"required"`
	NuevaPassword  string `json:"nuevaPassword" binding:"required,min=6"`
}

// GetPerfil handles GET /api/profile/:userId. The password hash never
// leaves the server; the model hides it from JSON.
func (ctl *UserController) GetPerfil(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := ctl.users.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "Usuario no encontrado.")
			return
		}
		log.Printf("perfil: %v", err)
		respondError(c, http.StatusInternalServerError, "Error al obtener el perfil.")
		return
	}

	respondData(c, http.StatusOK, user)
}

// UpdatePerfil handles PUT /api/profile/:userId. Absent fields stay as
// they are; they are never cleared.
func (ctl *UserController) UpdatePerfil(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var input PerfilInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := ctl.users.UpdateProfile(userID, services.ProfileInput{
		Nombre: input.Nombre,
		Email:  input.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		case errors.Is(err, services.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, "El email ya está en uso.")
		default:
			log.Printf("perfil: %v", err)
			respondError(c, http.StatusInternalServerError, "Error al actualizar el perfil.")
		}
		return
	}

	respondDataMensaje(c, http.StatusOK, user, "Perfil actualizado.")
}

// CambiarPassword handles PUT /api/profile/:userId/password.
func (ctl *UserController) CambiarPassword(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var input PasswordInput
	if !bindJSON(c, &input) {
		return
	}

	err := ctl.users.ChangePassword(userID, input.PasswordActual, input.NuevaPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		case errors.Is(err, services.ErrWrongPassword):
			respondError(c, http.StatusBadRequest, "Contraseña actual incorrecta.")
		default:
			log.Printf("password: %v", err)
			respondError(c, http.StatusInternalServerError, "Error al cambiar la contraseña.")
		}
		return
	}

	respondMensaje(c, http.StatusOK, "Contraseña actualizada correctamente.")
}

// GetIMC handles GET /api/profile/:userId/imc.
func (ctl *UserController) GetIMC(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	imc, categoria, err := ctl.users.IMC(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		case errors.Is(err, services.ErrIMCNoCalculable):
			respondError(c, http.StatusBadRequest, "No se puede calcular el IMC: faltan altura o peso.")
		default:
			log.Printf("imc: %v", err)
			respondError(c, http.StatusInternalServerError, "Error del servidor.")
		}
		return
	}

	respondData(c, http.StatusOK, gin.H{"imc": imc, "categoria": categoria})
}

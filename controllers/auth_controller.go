package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eabaitua/Nutriox-app/services"
)

type AuthController struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{auth: auth, users: users}
}

type RegistroInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Registro handles POST /api/auth/registro. Registration does not log the
// user in.
func (ctl *AuthController) Registro(c *gin.Context) {
	var input RegistroInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := ctl.auth.Register(input.Nombre, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, "El usuario ya existe.")
			return
		}
		log.Printf("registro: %v", err)
		respondError(c, http.StatusInternalServerError, "Error del servidor.")
		return
	}

	respondDataMensaje(c, http.StatusCreated, gin.H{"id": user.ID}, "Usuario registrado correctamente.")
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if !bindJSON(c, &input) {
		return
	}

	token, user, err := ctl.auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, "Usuario o contraseña incorrectos.")
			return
		}
		log.Printf("login: %v", err)
		respondError(c, http.StatusInternalServerError, "Error del servidor.")
		return
	}

	respondDataMensaje(c, http.StatusOK, gin.H{"token": token, "usuarioId": user.ID}, "Login exitoso.")
}

// Me handles GET /api/auth/me behind the auth middleware.
func (ctl *AuthController) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := ctl.users.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "Usuario no encontrado.")
			return
		}
		log.Printf("me: %v", err)
		respondError(c, http.StatusInternalServerError, "Error del servidor.")
		return
	}

	respondData(c, http.StatusOK, user)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Eabaitua/Nutriox-app/controllers"
	"github.com/Eabaitua/Nutriox-app/middlewares"
)

// Controllers groups everything SetupRouter needs to wire the API.
type Controllers struct {
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Alimentos *controllers.AlimentoController
	Recetas   *controllers.RecetaController
	Dietas    *controllers.DietaController
	Health    *controllers.HealthController
	JWTSecret string
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	r.StaticFile("/", "./public/index.html")
	if ctl.Health != nil {
		r.GET("/health", ctl.Health.Check)
	}

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/registro", ctl.Auth.Registro)
		auth.POST("/login", ctl.Auth.Login)
		auth.GET("/me", middlewares.AuthMiddleware(ctl.JWTSecret), ctl.Auth.Me)
	}

	profile := api.Group("/profile")
	{
		profile.GET("/:userId", ctl.Users.GetPerfil)
		profile.PUT("/:userId", ctl.Users.UpdatePerfil)
		profile.PUT("/:userId/password", ctl.Users.CambiarPassword)
		profile.GET("/:userId/imc", ctl.Users.GetIMC)
	}

	alimentos := api.Group("/alimentos")
	{
		alimentos.POST("", ctl.Alimentos.Create)
		alimentos.GET("", ctl.Alimentos.List)
		alimentos.GET("/:id", ctl.Alimentos.Get)
		alimentos.PUT("/:id", ctl.Alimentos.Update)
		alimentos.DELETE("/:id", ctl.Alimentos.Delete)
	}

	recetas := api.Group("/recetas")
	{
		recetas.POST("", ctl.Recetas.Create)
		recetas.GET("/:usuarioId", ctl.Recetas.ListByUsuario)
		recetas.PUT("/:id", ctl.Recetas.Update)
		recetas.DELETE("/:id", ctl.Recetas.Delete)
	}

	dietas := api.Group("/dietas")
	{
		dietas.POST("", ctl.Dietas.Create)
		dietas.GET("/:id", ctl.Dietas.ListByUsuario)
		dietas.GET("/:id/completa", ctl.Dietas.GetCompleta)
		dietas.DELETE("/:id", ctl.Dietas.Delete)
		dietas.POST("/:dietaId/recetas", ctl.Dietas.AddReceta)
	}

	return r
}

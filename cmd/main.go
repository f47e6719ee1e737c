package main

import (
	"log"

	"github.com/Eabaitua/Nutriox-app/config"
	"github.com/Eabaitua/Nutriox-app/controllers"
	"github.com/Eabaitua/Nutriox-app/repositories"
	"github.com/Eabaitua/Nutriox-app/routes"
	"github.com/Eabaitua/Nutriox-app/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	userRepo := repositories.NewUserPgRepository(db)
	alimentoRepo := repositories.NewAlimentoPgRepository(db)
	recetaRepo := repositories.NewRecetaPgRepository(db)
	dietaRepo := repositories.NewDietaPgRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := services.NewUserService(userRepo)
	alimentoSvc := services.NewAlimentoService(alimentoRepo)
	recetaSvc := services.NewRecetaService(recetaRepo)
	dietaSvc := services.NewDietaService(dietaRepo, recetaRepo)

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc, userSvc),
		Users:     controllers.NewUserController(userSvc),
		Alimentos: controllers.NewAlimentoController(alimentoSvc),
		Recetas:   controllers.NewRecetaController(recetaSvc),
		Dietas:    controllers.NewDietaController(dietaSvc),
		Health:    controllers.NewHealthController(db),
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("Servidor Nutriox corriendo en http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

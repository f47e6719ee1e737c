package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check handles GET /health and pings the database.
func (ctl *HealthController) Check(c *gin.Context) {
	sqlDB, err := ctl.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "Base de datos no disponible.")
		return
	}
	respondMensaje(c, http.StatusOK, "ok")
}

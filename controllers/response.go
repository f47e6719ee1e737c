package controllers

import "github.com/gin-gonic/gin"

// FieldError is one entry of the structured validation report.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Mensaje string       `json:"mensaje,omitempty"`
	Errores []FieldError `json:"errores,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMensaje(c *gin.Context, status int, mensaje string) {
	c.JSON(status, Response{Success: true, Mensaje: mensaje})
}

func respondDataMensaje(c *gin.Context, status int, data any, mensaje string) {
	c.JSON(status, Response{Success: true, Data: data, Mensaje: mensaje})
}

func respondError(c *gin.Context, status int, mensaje string) {
	c.JSON(status, Response{Success: false, Mensaje: mensaje})
}

func respondValidationErrors(c *gin.Context, errores []FieldError) {
	c.JSON(400, Response{Success: false, Mensaje: "Datos de entrada no válidos.", Errores: errores})
}

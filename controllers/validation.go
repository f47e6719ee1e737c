package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func init() {
	// Report violations under the json field names clients actually send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	}
}

// bindJSON binds and validates the request body. On any violation it writes
// the structured error response and reports false; the handler body must
// not run in that case.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondValidationErrors(c, fieldErrors(err))
		return false
	}
	return true
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Campo: "body", Mensaje: "El cuerpo de la petición no es JSON válido."}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Campo: fe.Field(), Mensaje: mensajeFor(fe)})
	}
	return out
}

func mensajeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un identificador válido"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("debe contener al menos %s elemento(s)", fe.Param())
		}
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	default:
		return "no es válido"
	}
}

// pathID validates a path parameter as a well-formed store reference.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		respondValidationErrors(c, []FieldError{{Campo: name, Mensaje: "debe ser un identificador válido"}})
		return "", false
	}
	return id, true
}

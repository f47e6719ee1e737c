package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Receta struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre       string    `gorm:"not null" json:"nombre"`
	Ingredientes []string  `gorm:"serializer:json;not null" json:"ingredientes"`
	Calorias     float64   `gorm:"not null" json:"calorias"`
	UsuarioID    string    `gorm:"type:uuid;index;not null" json:"usuarioId"` // FK -> users.id
	CreadaEn     time.Time `gorm:"autoCreateTime" json:"creadaEn"`
}

func (r *Receta) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

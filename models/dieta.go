package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dieta references its recetas by id; the slice keeps insertion order and
// must never hold the same id twice.
type Dieta struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre      string    `gorm:"not null" json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Calorias    float64   `gorm:"not null" json:"calorias"`
	UsuarioID   string    `gorm:"type:uuid;index;not null" json:"usuarioId"`
	Recetas     []string  `gorm:"serializer:json" json:"recetas"`
	CreadaEn    time.Time `gorm:"autoCreateTime" json:"creadaEn"`
}

func (d *Dieta) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

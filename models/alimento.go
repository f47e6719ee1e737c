package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alimento is a catalog entry with its macros per unit.
type Alimento struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre        string  `gorm:"uniqueIndex;not null" json:"nombre"`
	Calorias      float64 `gorm:"not null" json:"calorias"`
	Proteinas     float64 `gorm:"not null" json:"proteinas"`
	Grasas        float64 `gorm:"not null" json:"grasas"`
	Carbohidratos float64 `gorm:"not null" json:"carbohidratos"`
}

func (a *Alimento) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

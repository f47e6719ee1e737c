package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre   string `gorm:"not null" json:"nombre"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Edad     int     `json:"edad,omitempty"`
	Sexo     string  `json:"sexo,omitempty"`
	Altura   float64 `json:"altura,omitempty"` // cm
	Peso     float64 `json:"peso,omitempty"`   // kg
	Objetivo string  `json:"objetivo,omitempty"`

	CreadoEn time.Time `gorm:"autoCreateTime" json:"creadoEn"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package repositories

import (
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Eabaitua/Nutriox-app/models"
)

type dietaPgRepository struct {
	db *gorm.DB
}

func NewDietaPgRepository(db *gorm.DB) DietaRepository {
	return &dietaPgRepository{db: db}
}

func (r *dietaPgRepository) Create(dieta *models.Dieta) error {
	return translate(r.db.Create(dieta).Error)
}

func (r *dietaPgRepository) GetByID(id string) (*models.Dieta, error) {
	var dieta models.Dieta
	if err := r.db.Where("id = ?", id).First(&dieta).Error; err != nil {
		return nil, translate(err)
	}
	return &dieta, nil
}

func (r *dietaPgRepository) GetByUsuarioID(usuarioID string) ([]models.Dieta, error) {
	var dietas []models.Dieta
	err := r.db.Where("usuario_id = ?", usuarioID).Find(&dietas).Error
	return dietas, translate(err)
}

// AddReceta locks the dieta row for the duration of the transaction so the
// membership check and the append cannot race with a concurrent add.
func (r *dietaPgRepository) AddReceta(dietaID, recetaID string) (*models.Dieta, error) {
	var dieta models.Dieta
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", dietaID).First(&dieta).Error; err != nil {
			return err
		}
		if slices.Contains(dieta.Recetas, recetaID) {
			return ErrDuplicate
		}
		dieta.Recetas = append(dieta.Recetas, recetaID)
		return tx.Save(&dieta).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &dieta, nil
}

func (r *dietaPgRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Dieta{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

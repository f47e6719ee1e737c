package repositories

import (
	"gorm.io/gorm"

	"github.com/Eabaitua/Nutriox-app/models"
)

type recetaPgRepository struct {
	db *gorm.DB
}

func NewRecetaPgRepository(db *gorm.DB) RecetaRepository {
	return &recetaPgRepository{db: db}
}

func (r *recetaPgRepository) Create(receta *models.Receta) error {
	return translate(r.db.Create(receta).Error)
}

func (r *recetaPgRepository) GetByID(id string) (*models.Receta, error) {
	var receta models.Receta
	if err := r.db.Where("id = ?", id).First(&receta).Error; err != nil {
		return nil, translate(err)
	}
	return &receta, nil
}

func (r *recetaPgRepository) GetByUsuarioID(usuarioID string) ([]models.Receta, error) {
	var recetas []models.Receta
	err := r.db.Where("usuario_id = ?", usuarioID).Find(&recetas).Error
	return recetas, translate(err)
}

func (r *recetaPgRepository) GetByIDs(ids []string) ([]models.Receta, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recetas []models.Receta
	err := r.db.Where("id IN ?", ids).Find(&recetas).Error
	return recetas, translate(err)
}

func (r *recetaPgRepository) Update(receta *models.Receta) error {
	return translate(r.db.Save(receta).Error)
}

func (r *recetaPgRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Receta{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"gorm.io/gorm"

	"github.com/Eabaitua/Nutriox-app/models"
)

type alimentoPgRepository struct {
	db *gorm.DB
}

func NewAlimentoPgRepository(db *gorm.DB) AlimentoRepository {
	return &alimentoPgRepository{db: db}
}

func (r *alimentoPgRepository) Create(alimento *models.Alimento) error {
	return translate(r.db.Create(alimento).Error)
}

func (r *alimentoPgRepository) GetByID(id string) (*models.Alimento, error) {
	var alimento models.Alimento
	if err := r.db.Where("id = ?", id).First(&alimento).Error; err != nil {
		return nil, translate(err)
	}
	return &alimento, nil
}

func (r *alimentoPgRepository) GetAll() ([]models.Alimento, error) {
	var alimentos []models.Alimento
	err := r.db.Find(&alimentos).Error
	return alimentos, translate(err)
}

func (r *alimentoPgRepository) Update(alimento *models.Alimento) error {
	return translate(r.db.Save(alimento).Error)
}

func (r *alimentoPgRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Alimento{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

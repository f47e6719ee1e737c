package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Eabaitua/Nutriox-app/models"
)

type userPgRepository struct {
	db *gorm.DB
}

func NewUserPgRepository(db *gorm.DB) UserRepository {
	return &userPgRepository{db: db}
}

func (r *userPgRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *userPgRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userPgRepository) Update(user *models.User) error {
	return translate(r.db.Save(user).Error)
}

// translate maps gorm's sentinel errors onto the repository ones so no
// caller outside this package depends on gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

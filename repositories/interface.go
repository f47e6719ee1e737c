package repositories

import "github.com/Eabaitua/Nutriox-app/models"

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

type AlimentoRepository interface {
	Create(alimento *models.Alimento) error
	GetByID(id string) (*models.Alimento, error)
	GetAll() ([]models.Alimento, error)
	Update(alimento *models.Alimento) error
	Delete(id string) error
}

type RecetaRepository interface {
	Create(receta *models.Receta) error
	GetByID(id string) (*models.Receta, error)
	GetByUsuarioID(usuarioID string) ([]models.Receta, error)
	GetByIDs(ids []string) ([]models.Receta, error)
	Update(receta *models.Receta) error
	Delete(id string) error
}

type DietaRepository interface {
	Create(dieta *models.Dieta) error
	GetByID(id string) (*models.Dieta, error)
	GetByUsuarioID(usuarioID string) ([]models.Dieta, error)
	// AddReceta appends recetaID to the dieta's reference set. It returns
	// ErrNotFound if the dieta does not exist and ErrDuplicate if the
	// receta is already present. The check and the append run atomically.
	AddReceta(dietaID, recetaID string) (*models.Dieta, error)
	Delete(id string) error
}

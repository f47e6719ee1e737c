package services

import (
	"errors"

	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/repositories"
	"github.com/Eabaitua/Nutriox-app/utils"
)

var (
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrWrongPassword = errors.New("contraseña actual incorrecta")
	// ErrIMCNoCalculable covers profiles without plausible altura/peso.
	ErrIMCNoCalculable = errors.New("no se puede calcular el IMC con los datos del perfil")
)

// ProfileInput carries a partial profile update; nil fields are left
// untouched.
type ProfileInput struct {
	Nombre *string
	Email  *string
}

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID string, input ProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// An empty string counts as absent, mirroring the partial-update
	// contract: provided fields change, everything else stays.
	if input.Nombre != nil && *input.Nombre != "" {
		user.Nombre = *input.Nombre
	}
	if input.Email != nil && *input.Email != "" {
		user.Email = normalizeEmail(*input.Email)
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID, actual, nueva string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.CheckPasswordHash(actual, user.Password) {
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(nueva)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.users.Update(user)
}

// IMC computes the body mass index from the stored profile.
func (s *UserService) IMC(userID string) (float64, string, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, "", ErrUserNotFound
		}
		return 0, "", err
	}

	imc, err := utils.CalcularIMC(user.Altura, user.Peso)
	if err != nil {
		return 0, "", ErrIMCNoCalculable
	}
	return imc, utils.CategoriaIMC(imc), nil
}

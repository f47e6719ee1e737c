package services

import (
	"errors"
	"strings"

	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/repositories"
	"github.com/Eabaitua/Nutriox-app/utils"
)

var (
	// ErrEmailTaken signals a registration against an already used email.
	ErrEmailTaken = errors.New("el usuario ya existe")
	// ErrInvalidCredentials is deliberately generic: callers must not learn
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
)

type AuthService struct {
	users  repositories.UserRepository
	secret string
}

func NewAuthService(users repositories.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// normalizeEmail applies the same lowercase+trim the original schema did,
// so email uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(nombre, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Nombre:   strings.TrimSpace(nombre),
		Email:    normalizeEmail(email),
		Password: hashed,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login returns a signed session token for valid credentials.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.secret, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

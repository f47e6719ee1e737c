package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eabaitua/Nutriox-app/mocks"
	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/services"
	"github.com/Eabaitua/Nutriox-app/utils"
)

func seedUser(t *testing.T, repo *mocks.UserRepo, user models.User) *models.User {
	t.Helper()
	if user.Password == "" {
		hash, err := utils.HashPassword("secret1")
		require.NoError(t, err)
		user.Password = hash
	}
	require.NoError(t, repo.Create(&user))
	return &user
}

func TestGetProfile(t *testing.T) {
	t.Parallel()
	repo := mocks.NewUserRepo()
	svc := services.NewUserService(repo)

	seeded := seedUser(t, repo, models.User{Nombre: "Ana", Email: "a@x.com"})

	user, err := svc.GetProfile(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Nombre)

	_, err = svc.GetProfile("no-such-id")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	t.Parallel()
	repo := mocks.NewUserRepo()
	svc := services.NewUserService(repo)

	seeded := seedUser(t, repo, models.User{Nombre: "Ana", Email: "a@x.com"})

	email := "Nueva@X.com"
	updated, err := svc.UpdateProfile(seeded.ID, services.ProfileInput{Email: &email})
	require.NoError(t, err)

	// Only the provided field changes; nombre stays untouched.
	assert.Equal(t, "Ana", updated.Nombre)
	assert.Equal(t, "nueva@x.com", updated.Email)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	t.Parallel()
	repo := mocks.NewUserRepo()
	svc := services.NewUserService(repo)

	seedUser(t, repo, models.User{Nombre: "Ana", Email: "a@x.com"})
	other := seedUser(t, repo, models.User{Nombre: "Eva", Email: "e@x.com"})

	taken := "a@x.com"
	_, err := svc.UpdateProfile(other.ID, services.ProfileInput{Email: &taken})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	repo := mocks.NewUserRepo()
	svc := services.NewUserService(repo)

	seeded := seedUser(t, repo, models.User{Nombre: "Ana", Email: "a@x.com"})

	err := svc.ChangePassword(seeded.ID, "incorrecta", "nueva-clave")
	assert.ErrorIs(t, err, services.ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(seeded.ID, "secret1", "nueva-clave"))

	stored, err := repo.GetByID(seeded.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("nueva-clave", stored.Password))
	assert.False(t, utils.CheckPasswordHash("secret1", stored.Password))
}

func TestIMC(t *testing.T) {
	t.Parallel()
	repo := mocks.NewUserRepo()
	svc := services.NewUserService(repo)

	conDatos := seedUser(t, repo, models.User{Nombre: "Ana", Email: "a@x.com", Altura: 175, Peso: 70})
	sinDatos := seedUser(t, repo, models.User{Nombre: "Eva", Email: "e@x.com"})

	imc, categoria, err := svc.IMC(conDatos.ID)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, imc, 0.01)
	assert.Equal(t, "Peso normal", categoria)

	_, _, err = svc.IMC(sinDatos.ID)
	assert.ErrorIs(t, err, services.ErrIMCNoCalculable)

	_, _, err = svc.IMC("no-such-id")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Eabaitua/Nutriox-app/models"
	"github.com/Eabaitua/Nutriox-app/repositories"
)

type UserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

type AlimentoRepo struct {
	mu        sync.Mutex
	alimentos map[string]models.Alimento
}

func NewAlimentoRepo() *AlimentoRepo {
	return &AlimentoRepo{alimentos: make(map[string]models.Alimento)}
}

func (r *AlimentoRepo) Create(alimento *models.Alimento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alimentos {
		if a.Nombre == alimento.Nombre {
			return repositories.ErrDuplicate
		}
	}
	if alimento.ID == "" {
		alimento.ID = uuid.NewString()
	}
	r.alimentos[alimento.ID] = *alimento
	return nil
}

func (r *AlimentoRepo) GetByID(id string) (*models.Alimento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alimentos[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (r *AlimentoRepo) GetAll() ([]models.Alimento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Alimento, 0, len(r.alimentos))
	for _, a := range r.alimentos {
		out = append(out, a)
	}
	return out, nil
}

func (r *AlimentoRepo) Update(alimento *models.Alimento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.alimentos[alimento.ID]; !ok {
		return repositories.ErrNotFound
	}
	for id, a := range r.alimentos {
		if id != alimento.ID && a.Nombre == alimento.Nombre {
			return repositories.ErrDuplicate
		}
	}
	r.alimentos[alimento.ID] = *alimento
	return nil
}

func (r *AlimentoRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.alimentos[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.alimentos, id)
	return nil
}

type RecetaRepo struct {
	mu      sync.Mutex
	recetas map[string]models.Receta
}

func NewRecetaRepo() *RecetaRepo {
	return &RecetaRepo{recetas: make(map[string]models.Receta)}
}

func (r *RecetaRepo) Create(receta *models.Receta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if receta.ID == "" {
		receta.ID = uuid.NewString()
	}
	r.recetas[receta.ID] = *receta
	return nil
}

func (r *RecetaRepo) GetByID(id string) (*models.Receta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recetas[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &rec, nil
}

func (r *RecetaRepo) GetByUsuarioID(usuarioID string) ([]models.Receta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Receta
	for _, rec := range r.recetas {
		if rec.UsuarioID == usuarioID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *RecetaRepo) GetByIDs(ids []string) ([]models.Receta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Receta
	for _, id := range ids {
		if rec, ok := r.recetas[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *RecetaRepo) Update(receta *models.Receta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recetas[receta.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.recetas[receta.ID] = *receta
	return nil
}

func (r *RecetaRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recetas[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.recetas, id)
	return nil
}

type DietaRepo struct {
	mu     sync.Mutex
	dietas map[string]models.Dieta
}

func NewDietaRepo() *DietaRepo {
	return &DietaRepo{dietas: make(map[string]models.Dieta)}
}

func (r *DietaRepo) Create(dieta *models.Dieta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dieta.ID == "" {
		dieta.ID = uuid.NewString()
	}
	r.dietas[dieta.ID] = *dieta
	return nil
}

func (r *DietaRepo) GetByID(id string) (*models.Dieta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dietas[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &d, nil
}

func (r *DietaRepo) GetByUsuarioID(usuarioID string) ([]models.Dieta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Dieta
	for _, d := range r.dietas {
		if d.UsuarioID == usuarioID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *DietaRepo) AddReceta(dietaID, recetaID string) (*models.Dieta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dietas[dietaID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if slices.Contains(d.Recetas, recetaID) {
		return nil, repositories.ErrDuplicate
	}
	d.Recetas = append(d.Recetas, recetaID)
	r.dietas[dietaID] = d
	return &d, nil
}

func (r *DietaRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dietas[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.dietas, id)
	return nil
}

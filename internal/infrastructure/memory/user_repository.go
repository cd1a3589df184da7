package memory

import (
	"sync"

	"github.com/jhoicas/Planfin-api/internal/domain"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria, índice por ID y por email.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string // email -> id
}

// NewUserRepository construye el store en memoria.
func NewUserRepository() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
	}
}

// Create persiste un usuario; email repetido es ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

// GetByID devuelve una copia del usuario, o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail devuelve una copia del usuario, o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	return &u, nil
}

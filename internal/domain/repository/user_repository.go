package repository

import "github.com/jhoicas/Planfin-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}

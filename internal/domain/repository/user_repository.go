package repository

import "github.com/salonpro/salonpro-api/internal/domain/entity"

// UserRepository is the persistence port for staff users.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

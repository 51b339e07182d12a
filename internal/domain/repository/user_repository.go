package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit int) ([]*entity.User, error)
	UpdateRole(id, role string) error
	Delete(id string) error
	// CountByRole se usa para la regla del último administrador.
	CountByRole(role string) (int, error)
}

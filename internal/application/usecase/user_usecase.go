package usecase

import (
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin).
//
// Regla del último administrador: ni el cambio de rol ni la eliminación
// pueden dejar el sistema sin administradores. Se aplica de forma uniforme
// en ambas operaciones.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios (sin password hash en la respuesta).
func (uc *UserUseCase) List(limit int) (*dto.UserListResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	list, err := uc.repo.List(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *userToResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// UpdateRole cambia el rol de un usuario. Degradar al último admin
// devuelve ErrLastAdmin.
func (uc *UserUseCase) UpdateRole(id string, in dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	if in.Role != entity.RoleUser && in.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin && in.Role != entity.RoleAdmin {
		if err := uc.ensureNotLastAdmin(); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.UpdateRole(id, in.Role); err != nil {
		return nil, err
	}
	user.Role = in.Role
	return userToResponse(user), nil
}

// Delete elimina un usuario. Eliminar al último admin devuelve ErrLastAdmin.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin {
		if err := uc.ensureNotLastAdmin(); err != nil {
			return err
		}
	}
	return uc.repo.Delete(id)
}

func (uc *UserUseCase) ensureNotLastAdmin() error {
	admins, err := uc.repo.CountByRole(entity.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return domain.ErrLastAdmin
	}
	return nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package dto

// UpdateRoleRequest cambio de rol de un usuario (solo admin).
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// UserListResponse listado de usuarios para administración.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

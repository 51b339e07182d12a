package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario de la tienda.
// Email es único sin distinguir mayúsculas (se normaliza a minúsculas antes
// de persistir).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
//
// Create debe devolver domain.ErrDuplicate si ya existe una orden con el
// mismo StripeSessionID: el índice único es el mecanismo de control de
// concurrencia de la confirmación (dos llamadas simultáneas para la misma
// sesión producen exactamente un insert exitoso).
// GetBySessionID devuelve (nil, nil) cuando no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetBySessionID(sessionID string) (*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
	// List filtra por estado; status vacío lista todas.
	List(status string) ([]*entity.Order, error)
}

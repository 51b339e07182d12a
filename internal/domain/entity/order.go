package entity

import "time"

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusFailed    = "failed"
	OrderStatusRefunded  = "refunded"
	OrderStatusCancelled = "cancelled"
)

// OrderItem es el snapshot de una línea al momento de la compra.
// ProductID puede quedar vacío si el producto fue eliminado después del pago
// y la línea se reconstruyó desde el procesador de pagos.
type OrderItem struct {
	ProductID string
	Title     string
	ImageURL  string
	Price     int64 // centavos
}

// Order representa una compra confirmada contra el procesador de pagos.
// StripeSessionID es único: a lo sumo una orden por sesión de checkout,
// es la clave de idempotencia de todo el flujo de confirmación.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	Total           int64 // centavos
	Status          string
	StripeSessionID string
	Email           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

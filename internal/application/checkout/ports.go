package checkout

import "context"

// Claves de metadata que viajan en la sesión de checkout. Se escriben al
// crear la sesión y se leen al confirmar: son la fuente de verdad sobre
// quién inició la compra y (en compra directa) qué producto compró.
const (
	MetaUserID    = "userId"
	MetaProductID = "productId"
)

// PaymentStatusPaid estado que reporta el procesador cuando el pago se completó.
const PaymentStatusPaid = "paid"

// LineItem línea a cobrar en una sesión nueva. UnitAmount en centavos y
// siempre tomado del catálogo, nunca del cliente.
type LineItem struct {
	Name       string
	ImageURL   string
	UnitAmount int64
	Quantity   int64
}

// CreateSessionInput parámetros para crear una sesión de pago alojada.
type CreateSessionInput struct {
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// Session referencia a la sesión recién creada.
type Session struct {
	ID  string
	URL string
}

// SessionLineItem línea tal como la devuelve el procesador al recuperar la
// sesión (expandida con el producto). Montos en centavos.
type SessionLineItem struct {
	Description    string
	Quantity       int64
	AmountSubtotal int64
	AmountTotal    int64
	ProductName    string
	ImageURL       string
}

// RetrievedSession estado de una sesión consultada al procesador. Es la
// verdad terreno de la confirmación; nunca se persiste tal cual.
type RetrievedSession struct {
	ID            string
	PaymentStatus string // "paid" u otro
	AmountTotal   int64
	CustomerEmail string
	Metadata      map[string]string
	LineItems     []SessionLineItem
}

// PaymentGateway puerto hacia el procesador de pagos (Stripe Checkout).
// RetrieveSession devuelve domain.ErrNotFound (envuelto) si la sesión no
// existe en el procesador.
type PaymentGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*RetrievedSession, error)
}

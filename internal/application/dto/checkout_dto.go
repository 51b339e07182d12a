package dto

// CreateSessionRequest compra directa de un solo producto.
// Nótese que no existe campo de precio: el precio siempre sale del catálogo.
type CreateSessionRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartLine una línea del carrito. Qty menor a 1 se normaliza a 1.
type CartLine struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int64  `json:"qty"`
}

// CreateCartSessionRequest checkout multi-producto del carrito.
type CreateCartSessionRequest struct {
	Items []CartLine `json:"items" validate:"required,min=1"`
}

// CheckoutSessionResponse id y URL de la página de pago alojada.
type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ConfirmOrderRequest confirma una sesión pagada y registra la orden.
type ConfirmOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

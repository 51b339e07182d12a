package dto

import "time"

// OrderItemResponse snapshot de una línea de la orden.
type OrderItemResponse struct {
	ProductID      string `json:"product_id,omitempty"`
	Title          string `json:"title"`
	ImageURL       string `json:"image_url"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	Total           int64               `json:"total"`
	TotalFormatted  string              `json:"total_formatted"`
	Status          string              `json:"status"`
	StripeSessionID string              `json:"stripe_session_id"`
	Email           string              `json:"email,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

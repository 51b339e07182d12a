package dto

import "time"

// CreateProductRequest entrada para crear un producto (solo admin).
// Price viene en unidades menores (centavos). La subida de la imagen ocurre
// fuera de esta API; aquí solo se registran la URL y el id del proveedor.
type CreateProductRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Price       int64  `json:"price" validate:"required,min=1"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	MediaID     string `json:"media_id" validate:"required"`
}

// SearchProductsRequest parámetros de búsqueda del catálogo.
type SearchProductsRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	Sort     string `query:"sort"` // newest, priceAsc, priceDesc
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Price          int64     `json:"price"`
	PriceFormatted string    `json:"price_formatted"`
	ImageURL       string    `json:"image_url"`
	MediaID        string    `json:"media_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductSearchResponse lista paginada de productos.
type ProductSearchResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
}

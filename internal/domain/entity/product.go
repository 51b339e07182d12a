package entity

import "time"

// Product representa un wallpaper del catálogo.
// Price se guarda en unidades menores (centavos USD) para evitar errores de
// punto flotante. Las órdenes guardan un snapshot de título/imagen/precio,
// no una referencia viva al producto.
type Product struct {
	ID          string
	Title       string
	Description string
	Category    string
	Price       int64  // centavos
	ImageURL    string
	MediaID     string // public_id del proveedor de imágenes
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

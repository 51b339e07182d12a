package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// Parámetros de búsqueda del catálogo.
type ProductSearch struct {
	Query    string
	Category string
	Sort     string // newest, priceAsc, priceDesc
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(category string) ([]*entity.Product, error)
	Search(params ProductSearch) ([]*entity.Product, int, error)
	Delete(id string) error
}

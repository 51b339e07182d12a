package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

// Orden de búsqueda permitido. Cualquier otro valor cae en newest.
var validSorts = map[string]bool{
	"newest":    true,
	"priceAsc":  true,
	"priceDesc": true,
}

// ProductUseCase casos de uso del catálogo. El precio se recibe ya en
// unidades menores; el producto es inmutable una vez referenciado por una
// orden (las órdenes guardan snapshot, no referencia viva).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo (solo admin).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Title == "" || in.Category == "" || in.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ImageURL == "" || in.MediaID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		MediaID:     in.MediaID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista el catálogo, opcionalmente filtrado por categoría, más reciente primero.
func (uc *ProductUseCase) List(category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Search busca por texto en título/descripción con paginación por página.
func (uc *ProductUseCase) Search(in dto.SearchProductsRequest) (*dto.ProductSearchResponse, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}
	sort := in.Sort
	if !validSorts[sort] {
		sort = "newest"
	}

	list, total, err := uc.repo.Search(repository.ProductSearch{
		Query:    in.Query,
		Category: in.Category,
		Sort:     sort,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return &dto.ProductSearchResponse{
		Items: items,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

// Delete elimina un producto por ID. La imagen del proveedor externo se
// limpia fuera de esta API.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price,
		PriceFormatted: money.Format(p.Price),
		ImageURL:       p.ImageURL,
		MediaID:        p.MediaID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

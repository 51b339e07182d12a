package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

type fakeProductRepo struct {
	byID       map[string]*entity.Product
	lastSearch repository.ProductSearch
	results    []*entity.Product
	total      int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error             { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *fakeProductRepo) Delete(id string) error                     { delete(r.byID, id); return nil }

func (r *fakeProductRepo) List(category string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(params repository.ProductSearch) ([]*entity.Product, int, error) {
	r.lastSearch = params
	return r.results, r.total, nil
}

func sunset() *entity.Product {
	return &entity.Product{
		ID:       "p1",
		Title:    "Sunset",
		Category: "nature",
		Price:    199,
		ImageURL: "https://cdn.example.com/sunset.jpg",
		MediaID:  "m1",
	}
}

func TestCreateProduct_Valido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Title:    "Sunset",
		Category: "nature",
		Price:    199,
		ImageURL: "https://cdn.example.com/sunset.jpg",
		MediaID:  "m1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(199), out.Price)
	assert.Equal(t, "1.99", out.PriceFormatted)
}

func TestCreateProduct_PrecioCero_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Title:    "Sunset",
		Category: "nature",
		Price:    0,
		ImageURL: "https://cdn.example.com/sunset.jpg",
		MediaID:  "m1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_Inexistente_Nil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Parámetros fuera de rango se normalizan: página mínima 1, límite acotado y
// orden desconocido cae a newest.
func TestSearch_NormalizaParametros(t *testing.T) {
	repo := newFakeProductRepo()
	repo.results = []*entity.Product{sunset()}
	repo.total = 25
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Search(dto.SearchProductsRequest{
		Query: "sun",
		Sort:  "precioRaro",
		Page:  0,
		Limit: -5,
	})
	require.NoError(t, err)

	assert.Equal(t, "newest", repo.lastSearch.Sort)
	assert.Equal(t, 12, repo.lastSearch.Limit)
	assert.Equal(t, 0, repo.lastSearch.Offset)

	assert.Equal(t, 25, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 3, out.Pages, "25 resultados / 12 por página = 3 páginas")
}

func TestSearch_PaginaDos_CalculaOffset(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search(dto.SearchProductsRequest{Page: 2, Limit: 10, Sort: "priceAsc"})
	require.NoError(t, err)

	assert.Equal(t, 10, repo.lastSearch.Offset)
	assert.Equal(t, "priceAsc", repo.lastSearch.Sort)
}

func TestDeleteProduct_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct_Existente(t *testing.T) {
	repo := newFakeProductRepo(sunset())
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Delete("p1"))
	stored, _ := repo.GetByID("p1")
	assert.Nil(t, stored)
}

package checkout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func newCreateSessionUC(products *fakeProductRepo, gateway *fakeGateway) *checkout.CreateSessionUseCase {
	return checkout.NewCreateSessionUseCase(products, gateway, checkout.URLConfig{
		SuccessURL: "https://tienda.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://tienda.example.com/cancel",
	})
}

// El precio, título e imagen de la línea salen del catálogo; del cliente solo
// se toma el id. La metadata lleva dueño y producto.
func TestCreateSingle_UsaPrecioDelCatalogo(t *testing.T) {
	gateway := newFakeGateway()
	uc := newCreateSessionUC(newFakeProductRepo(sunsetProduct()), gateway)

	out, err := uc.CreateSingle(context.Background(), "u1", "ana@example.com", dto.CreateSessionRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_new", out.ID)
	assert.NotEmpty(t, out.URL)

	require.Len(t, gateway.created, 1)
	in := gateway.created[0]
	require.Len(t, in.LineItems, 1)
	assert.Equal(t, "Sunset", in.LineItems[0].Name)
	assert.Equal(t, int64(199), in.LineItems[0].UnitAmount)
	assert.Equal(t, int64(1), in.LineItems[0].Quantity)
	assert.Equal(t, "ana@example.com", in.CustomerEmail)
	assert.Equal(t, "u1", in.Metadata["userId"])
	assert.Equal(t, "p1", in.Metadata["productId"])
	assert.Contains(t, in.SuccessURL, "{CHECKOUT_SESSION_ID}")
}

func TestCreateSingle_ProductoInexistente_NotFound(t *testing.T) {
	uc := newCreateSessionUC(newFakeProductRepo(), newFakeGateway())

	_, err := uc.CreateSingle(context.Background(), "u1", "ana@example.com", dto.CreateSessionRequest{ProductID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "no-existe")
}

func TestCreateSingle_SinProductID_Invalido(t *testing.T) {
	uc := newCreateSessionUC(newFakeProductRepo(), newFakeGateway())

	_, err := uc.CreateSingle(context.Background(), "u1", "ana@example.com", dto.CreateSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Carrito: una línea por producto, cantidades con piso 1 y metadata solo con
// el dueño (las líneas se reconstruyen del procesador al confirmar).
func TestCreateCart_LineasYCantidades(t *testing.T) {
	ocean := &entity.Product{ID: "p2", Title: "Ocean", Category: "nature", Price: 250, ImageURL: "https://cdn.example.com/ocean.jpg"}
	gateway := newFakeGateway()
	uc := newCreateSessionUC(newFakeProductRepo(sunsetProduct(), ocean), gateway)

	_, err := uc.CreateCart(context.Background(), "u1", "ana@example.com", dto.CreateCartSessionRequest{
		Items: []dto.CartLine{
			{ProductID: "p1", Qty: 2},
			{ProductID: "p2", Qty: 0}, // cantidad inválida, se fuerza a 1
		},
	})
	require.NoError(t, err)

	require.Len(t, gateway.created, 1)
	in := gateway.created[0]
	require.Len(t, in.LineItems, 2)
	assert.Equal(t, int64(2), in.LineItems[0].Quantity)
	assert.Equal(t, int64(199), in.LineItems[0].UnitAmount)
	assert.Equal(t, int64(1), in.LineItems[1].Quantity)
	assert.Equal(t, int64(250), in.LineItems[1].UnitAmount)

	assert.Equal(t, "u1", in.Metadata["userId"])
	_, hasProduct := in.Metadata["productId"]
	assert.False(t, hasProduct, "la sesión de carrito no referencia un solo producto")
}

func TestCreateCart_CarritoVacio_Invalido(t *testing.T) {
	uc := newCreateSessionUC(newFakeProductRepo(), newFakeGateway())

	_, err := uc.CreateCart(context.Background(), "u1", "ana@example.com", dto.CreateCartSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCart_ProductoInexistente_NotFound(t *testing.T) {
	uc := newCreateSessionUC(newFakeProductRepo(sunsetProduct()), newFakeGateway())

	_, err := uc.CreateCart(context.Background(), "u1", "ana@example.com", dto.CreateCartSessionRequest{
		Items: []dto.CartLine{{ProductID: "p1", Qty: 1}, {ProductID: "p-borrado", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

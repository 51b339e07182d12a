package checkout

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// URLConfig plantillas de redirección del checkout alojado.
type URLConfig struct {
	SuccessURL string // incluye {CHECKOUT_SESSION_ID}
	CancelURL  string
}

// CreateSessionUseCase convierte la intención de compra de un usuario
// autenticado en una sesión de pago alojada.
//
// Frontera de confianza: el precio, título e imagen de cada línea salen
// SIEMPRE del catálogo local; del cliente solo se aceptan ids y cantidades.
type CreateSessionUseCase struct {
	products repository.ProductRepository
	gateway  PaymentGateway
	urls     URLConfig
}

// NewCreateSessionUseCase construye el caso de uso.
func NewCreateSessionUseCase(products repository.ProductRepository, gateway PaymentGateway, urls URLConfig) *CreateSessionUseCase {
	return &CreateSessionUseCase{products: products, gateway: gateway, urls: urls}
}

// CreateSingle crea una sesión "comprar ahora" de un solo producto.
// La metadata lleva userId y productId para que la confirmación pueda
// verificar dueño y re-resolver el producto sin confiar en el cliente.
func (uc *CreateSessionUseCase) CreateSingle(ctx context.Context, userID, email string, in dto.CreateSessionRequest) (*dto.CheckoutSessionResponse, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("lookup product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}

	session, err := uc.gateway.CreateSession(ctx, CreateSessionInput{
		LineItems: []LineItem{{
			Name:       product.Title,
			ImageURL:   product.ImageURL,
			UnitAmount: product.Price,
			Quantity:   1,
		}},
		SuccessURL:    uc.urls.SuccessURL,
		CancelURL:     uc.urls.CancelURL,
		CustomerEmail: email,
		Metadata: map[string]string{
			MetaUserID:    userID,
			MetaProductID: product.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &dto.CheckoutSessionResponse{ID: session.ID, URL: session.URL}, nil
}

// CreateCart crea una sesión multi-producto para el carrito. La metadata
// lleva solo userId: al confirmar, las líneas se reconstruyen desde los
// line items que devuelve el procesador.
func (uc *CreateSessionUseCase) CreateCart(ctx context.Context, userID, email string, in dto.CreateCartSessionRequest) (*dto.CheckoutSessionResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items es requerido", domain.ErrInvalidInput)
	}

	lineItems := make([]LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id es requerido en cada línea", domain.ErrInvalidInput)
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("lookup product: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		lineItems = append(lineItems, LineItem{
			Name:       product.Title,
			ImageURL:   product.ImageURL,
			UnitAmount: product.Price,
			Quantity:   qty,
		})
	}

	session, err := uc.gateway.CreateSession(ctx, CreateSessionInput{
		LineItems:     lineItems,
		SuccessURL:    uc.urls.SuccessURL,
		CancelURL:     uc.urls.CancelURL,
		CustomerEmail: email,
		Metadata: map[string]string{
			MetaUserID: userID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create cart checkout session: %w", err)
	}
	return &dto.CheckoutSessionResponse{ID: session.ID, URL: session.URL}, nil
}

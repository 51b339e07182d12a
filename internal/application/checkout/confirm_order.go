package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

// fallbackTitle título de respaldo cuando ni el catálogo ni el procesador
// devuelven un nombre para la línea.
const fallbackTitle = "Wallpaper"

// ConfirmOrderUseCase convierte una sesión de pago completada en exactamente
// una orden durable, seguro ante reintentos y llamadas concurrentes.
//
// Orden de verificación: idempotencia -> verdad terreno del procesador ->
// pago completo -> dueño -> reconstrucción de líneas -> insert. El índice
// único sobre stripe_session_id resuelve la carrera entre la verificación
// inicial y el insert: el perdedor relee la orden existente en lugar de
// fallar.
type ConfirmOrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	gateway  PaymentGateway
}

// NewConfirmOrderUseCase construye el caso de uso.
func NewConfirmOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, gateway PaymentGateway) *ConfirmOrderUseCase {
	return &ConfirmOrderUseCase{orders: orders, products: products, gateway: gateway}
}

// Confirm registra la orden de la sesión indicada. Devuelve la orden y un
// bool created: false significa que ya existía (reintento u otra llamada
// ganó la carrera); ambas son respuestas exitosas.
func (uc *ConfirmOrderUseCase) Confirm(ctx context.Context, userID, sessionID string) (*dto.OrderResponse, bool, error) {
	if sessionID == "" {
		return nil, false, fmt.Errorf("%w: session_id es requerido", domain.ErrInvalidInput)
	}

	// Idempotencia: si la sesión ya fue registrada, devolver esa orden.
	existing, err := uc.orders.GetBySessionID(sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("lookup order by session: %w", err)
	}
	if existing != nil {
		return toOrderResponse(existing), false, nil
	}

	// Verdad terreno: el estado de la sesión se consulta al procesador,
	// nunca se acepta del cliente.
	session, err := uc.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: sesión %s", domain.ErrNotFound, sessionID)
		}
		return nil, false, fmt.Errorf("retrieve session: %w", err)
	}

	if session.PaymentStatus != PaymentStatusPaid {
		return nil, false, domain.ErrPaymentIncomplete
	}

	// La sesión debe pertenecer al que la confirma. La metadata se escribió
	// en la creación de la sesión con la identidad verificada de ese momento;
	// esto impide reclamar la sesión de otro usuario adivinando el id.
	if owner := session.Metadata[MetaUserID]; owner == "" || owner != userID {
		return nil, false, domain.ErrForbidden
	}

	items := uc.resolveItems(session)
	total := session.AmountTotal
	if total == 0 {
		prices := make([]int64, 0, len(items))
		for _, it := range items {
			prices = append(prices, it.Price)
		}
		total = money.Sum(prices)
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		Total:           total,
		Status:          entity.OrderStatusPaid,
		StripeSessionID: session.ID,
		Email:           session.CustomerEmail,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.orders.Create(order); err != nil {
		// Carrera entre dos confirmaciones de la misma sesión: el chequeo de
		// idempotencia y el insert no son atómicos como par, así que el
		// perdedor del índice único recupera la orden que ya quedó escrita.
		if errors.Is(err, domain.ErrDuplicate) {
			winner, lookupErr := uc.orders.GetBySessionID(sessionID)
			if lookupErr == nil && winner != nil {
				return toOrderResponse(winner), false, nil
			}
			return nil, false, fmt.Errorf("recover duplicate order: %w", err)
		}
		return nil, false, fmt.Errorf("insert order: %w", err)
	}

	return toOrderResponse(order), true, nil
}

// resolveItems reconstruye las líneas de la orden. Preferencia: producto del
// catálogo local vía metadata.productId (compra directa); si no aplica o el
// producto ya no existe, se usan los line items del procesador (carrito o
// producto eliminado después del pago).
func (uc *ConfirmOrderUseCase) resolveItems(session *RetrievedSession) []entity.OrderItem {
	if pid := session.Metadata[MetaProductID]; pid != "" {
		product, err := uc.products.GetByID(pid)
		if err == nil && product != nil {
			return []entity.OrderItem{{
				ProductID: product.ID,
				Title:     product.Title,
				ImageURL:  product.ImageURL,
				Price:     product.Price,
			}}
		}
	}

	items := make([]entity.OrderItem, 0, len(session.LineItems))
	for _, li := range session.LineItems {
		title := li.Description
		if title == "" {
			title = li.ProductName
		}
		if title == "" {
			title = fallbackTitle
		}
		price := li.AmountSubtotal
		if price == 0 {
			price = li.AmountTotal
		}
		items = append(items, entity.OrderItem{
			Title:    title,
			ImageURL: li.ImageURL,
			Price:    price,
		})
	}
	if len(items) == 0 {
		items = append(items, entity.OrderItem{Title: fallbackTitle})
	}
	return items
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:      it.ProductID,
			Title:          it.Title,
			ImageURL:       it.ImageURL,
			Price:          it.Price,
			PriceFormatted: money.Format(it.Price),
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		Total:           o.Total,
		TotalFormatted:  money.Format(o.Total),
		Status:          o.Status,
		StripeSessionID: o.StripeSessionID,
		Email:           o.Email,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

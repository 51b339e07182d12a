package usecase

import (
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

// OrderUseCase consultas de órdenes. Las órdenes se crean únicamente en la
// confirmación del checkout; aquí solo se leen.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// ListByUser órdenes del usuario autenticado, más reciente primero.
func (uc *OrderUseCase) ListByUser(userID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListAll todas las órdenes (solo admin). Por defecto solo las pagadas;
// status "all" lista todas y cualquier otro valor filtra por ese estado.
func (uc *OrderUseCase) ListAll(status string) ([]dto.OrderResponse, error) {
	filter := status
	switch status {
	case "", entity.OrderStatusPaid:
		filter = entity.OrderStatusPaid
	case "all":
		filter = ""
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *orderToResponse(o))
	}
	return items
}

func orderToResponse(o *entity.Order) *dto.OrderResponse {
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

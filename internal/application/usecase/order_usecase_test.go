package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.orders = append(r.orders, o); return nil }

func (r *fakeOrderRepo) GetBySessionID(sessionID string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.StripeSessionID == sessionID {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func paidOrder(id, userID string) *entity.Order {
	return &entity.Order{
		ID:              id,
		UserID:          userID,
		Total:           199,
		Status:          entity.OrderStatusPaid,
		StripeSessionID: "cs_" + id,
		Items:           []entity.OrderItem{{Title: "Sunset", Price: 199}},
	}
}

func TestListByUser_SoloLasDelUsuario(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{paidOrder("o1", "u1"), paidOrder("o2", "u2")}}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "o1", out[0].ID)
}

func TestListAll_FiltraPorEstado(t *testing.T) {
	pending := paidOrder("o2", "u1")
	pending.Status = entity.OrderStatusPending
	repo := &fakeOrderRepo{orders: []*entity.Order{paidOrder("o1", "u1"), pending}}
	uc := usecase.NewOrderUseCase(repo)

	paid, err := uc.ListAll("")
	require.NoError(t, err)
	assert.Len(t, paid, 1, "por defecto solo las pagadas")

	all, err := uc.ListAll("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// Las órdenes son registros de compra: eliminar al usuario no las toca.
// Siguen visibles para el admin después del borrado.
func TestOrdenes_SobrevivenAlBorradoDelUsuario(t *testing.T) {
	userRepo := newFakeUserRepo(admin("a1"), regular("u1"))
	orderRepo := &fakeOrderRepo{orders: []*entity.Order{paidOrder("o1", "u1")}}
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)

	require.NoError(t, userUC.Delete("u1"))
	gone, _ := userRepo.GetByID("u1")
	require.Nil(t, gone, "el usuario debe estar eliminado")

	out, err := orderUC.ListAll("all")
	require.NoError(t, err)
	require.Len(t, out, 1, "la orden debe sobrevivir al borrado del usuario")
	assert.Equal(t, "u1", out[0].UserID)
}

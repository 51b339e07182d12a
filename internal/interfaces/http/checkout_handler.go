package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// CheckoutHandler maneja creación de sesiones de pago y confirmación de órdenes.
type CheckoutHandler struct {
	createSession *checkout.CreateSessionUseCase
	confirmOrder  *checkout.ConfirmOrderUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(createSession *checkout.CreateSessionUseCase, confirmOrder *checkout.ConfirmOrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{createSession: createSession, confirmOrder: confirmOrder}
}

// CreateSession godoc
// @Summary      Crear sesión de pago de un producto
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSessionRequest  true  "Producto a comprar"
// @Success      200   {object}  dto.CheckoutSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/checkout/create-session [post]
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	var in dto.CreateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createSession.CreateSingle(c.Context(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// CreateCartSession godoc
// @Summary      Crear sesión de pago del carrito
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCartSessionRequest  true  "Líneas del carrito"
// @Success      200   {object}  dto.CheckoutSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/checkout/create-cart-session [post]
func (h *CheckoutHandler) CreateCartSession(c *fiber.Ctx) error {
	var in dto.CreateCartSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createSession.CreateCart(c.Context(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar una sesión pagada y registrar la orden
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmOrderRequest  true  "Sesión a confirmar"
// @Success      200   {object}  dto.OrderResponse  "Orden ya existente (reintento)"
// @Success      201   {object}  dto.OrderResponse  "Orden creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, created, err := h.confirmOrder.Confirm(c.Context(), GetUserID(c), in.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_id es requerido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
		case errors.Is(err, domain.ErrPaymentIncomplete):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PAYMENT_INCOMPLETE", Message: "el pago no se ha completado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la sesión no pertenece al usuario actual"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo confirmar la orden, intente de nuevo"})
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// checkoutError traduce los errores de creación de sesión. Los fallos del
// procesador no se reenvían crudos al cliente.
func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CHECKOUT_FAILED", Message: "no se pudo iniciar el checkout"})
}

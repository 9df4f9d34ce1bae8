package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// OrderItemHandler maneja las peticiones HTTP para OrderItem. El tenant
// de una línea es el de su orden padre.
type OrderItemHandler struct {
	uc *usecase.OrderItemUseCase
}

// NewOrderItemHandler construye el handler.
func NewOrderItemHandler(uc *usecase.OrderItemUseCase) *OrderItemHandler {
	return &OrderItemHandler{uc: uc}
}

// List lista las líneas de las órdenes de la empresa del llamador.
func (h *OrderItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una línea por id.
func (h *OrderItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea una línea en una orden de la empresa del llamador.
func (h *OrderItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderId y productId son requeridos"})
	}
	out, err := h.uc.Create(in, GetUserID(c), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza una línea.
func (h *OrderItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete marca el borrado lógico de una línea.
func (h *OrderItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea de orden eliminada"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// BusinessPartnerHandler maneja las peticiones HTTP para BusinessPartner.
type BusinessPartnerHandler struct {
	uc *usecase.BusinessPartnerUseCase
}

// NewBusinessPartnerHandler construye el handler.
func NewBusinessPartnerHandler(uc *usecase.BusinessPartnerUseCase) *BusinessPartnerHandler {
	return &BusinessPartnerHandler{uc: uc}
}

// List lista los socios de la empresa del llamador.
func (h *BusinessPartnerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un socio por id.
func (h *BusinessPartnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea un socio en la empresa del llamador.
func (h *BusinessPartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessPartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y type son requeridos"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un socio.
func (h *BusinessPartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessPartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete marca el borrado lógico de un socio.
func (h *BusinessPartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "socio eliminado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ReportHandler expone las tres agregaciones de lectura. Cada una
// devuelve exactamente una fila o 404 si no hay datos que califiquen.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopCustomer devuelve el cliente con más órdenes shipment de la
// empresa del llamador.
func (h *ReportHandler) TopCustomer(c *fiber.Ctx) error {
	out, err := h.uc.GetCustomerWithMostOrders(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BestSellingProduct devuelve el producto con mayor cantidad vendida
// (solo órdenes shipment).
func (h *ReportHandler) BestSellingProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetBestSellingProduct(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HighestStock devuelve el par (bodega, producto) con mayor stock
// actual: Σ delivery − Σ shipment.
func (h *ReportHandler) HighestStock(c *fiber.Ctx) error {
	out, err := h.uc.GetProductWithHighestStock(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes de inventario (solo lectura).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Reorder godoc
// @Summary      Lista de reposición
// @Description  Devuelve los artículos con cantidad <= punto de reorden,
// @Description  ordenados por mayor déficit primero.
// @Tags         reports
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/reorder [get]
func (h *ReportHandler) Reorder(c *fiber.Ctx) error {
	items, err := h.uc.ItemsToReorder(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// Value godoc
// @Summary      Valoración del inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryValueDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/value [get]
func (h *ReportHandler) Value(c *fiber.Ctx) error {
	value, err := h.uc.InventoryValue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(value)
}

// Report godoc
// @Summary      Reporte agregado de inventario
// @Description  Totales, valoración con utilidad y margen, distribución por
// @Description  categoría, lista de reposición y conteo de alertas activas.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.Report(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

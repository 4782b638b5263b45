package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockledger/internal/application/alerts"
	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock.
type AlertHandler struct {
	uc *alerts.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// ListActive godoc
// @Summary      Listar alertas activas
// @Tags         alerts
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.AlertListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) ListActive(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.ActiveAlerts(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Resolve godoc
// @Summary      Resolver una alerta
// @Description  Marca la alerta como resuelta con la hora actual. Las alertas
// @Description  nunca se resuelven solas al reponer stock.
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alert, err := h.uc.Resolve(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		if errors.Is(err, domain.ErrAlreadyResolved) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RESOLVED", Message: "la alerta ya fue resuelta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(alert)
}

// ListByItem godoc
// @Summary      Alertas de un artículo (resueltas o no)
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.AlertListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/alerts [get]
func (h *AlertHandler) ListByItem(c *fiber.Ctx) error {
	list, err := h.uc.AlertsForItem(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

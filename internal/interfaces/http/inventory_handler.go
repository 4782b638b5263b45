package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/application/inventory"
	"github.com/invorya/stockledger/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del ledger de movimientos.
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica un movimiento (in, out, transfer, adjustment) de forma
// @Description  atómica y devuelve el movimiento registrado más el artículo actualizado.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type, quantity, from/to_location (transfer), reason, performed_by"
// @Success      201  {object}  dto.RegisterMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	result, err := h.ledger.RecordMovementFromRequest(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		case errors.Is(err, domain.ErrMissingTransferLocation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TRANSFER_LOCATION", Message: "traslado requiere ubicación de origen y destino"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un artículo
// @Description  Devuelve el ledger cronológico (ascendente) del artículo.
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID del artículo"
// @Param        limit   query  int     false  "Tamaño de página (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.ledger.MovementsForItem(c.Params("id"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

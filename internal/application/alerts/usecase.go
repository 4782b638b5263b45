package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/inventory"
	"github.com/invorya/stockledger/internal/domain/repository"
	"github.com/invorya/stockledger/pkg/logger"
)

// AlertUseCase motor de alertas de stock: clasifica la salud del artículo tras
// cada movimiento y administra el ciclo de vida de las alertas. Las alertas no
// se resuelven solas al reponer stock; la resolución es una decisión explícita
// del caller (reponer requiere confirmación humana o de proceso).
type AlertUseCase struct {
	repo repository.AlertRepository
	log  *logger.Logger
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository, log *logger.Logger) *AlertUseCase {
	return &AlertUseCase{repo: repo, log: log}
}

// Evaluate clasifica el artículo y crea una alerta low_stock si está bajo o sin
// existencias y no hay ya una alerta low_stock sin resolver para ese artículo.
// Con clasificación normal no hace nada.
func (uc *AlertUseCase) Evaluate(item *entity.InventoryItem) error {
	status := inventory.Classify(item)
	if status == inventory.StatusNormal {
		return nil
	}

	exists, err := uc.repo.HasUnresolved(item.ID, entity.AlertLowStock)
	if err != nil {
		return err
	}
	if exists {
		// Ya hay una advertencia abierta para este artículo; no duplicar
		return nil
	}

	var message string
	switch status {
	case inventory.StatusOutOfStock:
		message = fmt.Sprintf("SKU %s (%s) sin existencias", item.SKU, item.Name)
	default:
		message = fmt.Sprintf("stock bajo para SKU %s (%s): %d unidades, mínimo %d",
			item.SKU, item.Name, item.Quantity, item.MinimumStockLevel)
	}

	alert := &entity.StockAlert{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		Type:      entity.AlertLowStock,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(alert); err != nil {
		return err
	}
	uc.log.Warn().
		Str("alert_id", alert.ID).
		Str("item_id", item.ID).
		Str("sku", item.SKU).
		Int64("quantity", item.Quantity).
		Msg(message)
	return nil
}

// Resolve marca una alerta como resuelta con la hora actual.
func (uc *AlertUseCase) Resolve(alertID string) (*dto.AlertResponse, error) {
	alert, err := uc.repo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrAlertNotFound
	}
	if alert.IsResolved {
		return nil, domain.ErrAlreadyResolved
	}
	now := time.Now()
	alert.IsResolved = true
	alert.ResolvedAt = &now
	if err := uc.repo.Update(alert); err != nil {
		return nil, err
	}
	resp := dto.NewAlertResponse(alert)
	return &resp, nil
}

// ActiveAlerts lista las alertas sin resolver.
func (uc *AlertUseCase) ActiveAlerts(page dto.PageRequest) (*dto.AlertListResponse, error) {
	page.DefaultPage()
	alerts, err := uc.repo.ListActive(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toAlertList(alerts), nil
}

// AlertsForItem lista todas las alertas (resueltas o no) de un artículo.
func (uc *AlertUseCase) AlertsForItem(itemID string) (*dto.AlertListResponse, error) {
	alerts, err := uc.repo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toAlertList(alerts), nil
}

func toAlertList(alerts []*entity.StockAlert) *dto.AlertListResponse {
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.NewAlertResponse(a))
	}
	return &dto.AlertListResponse{Alerts: out, Total: len(out)}
}

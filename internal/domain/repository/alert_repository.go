package repository

import "github.com/invorya/stockledger/internal/domain/entity"

// AlertRepository define el puerto de persistencia para alertas de stock.
// Las alertas no se eliminan; solo transicionan a resueltas.
type AlertRepository interface {
	Create(alert *entity.StockAlert) error
	GetByID(id string) (*entity.StockAlert, error)
	// HasUnresolved indica si existe una alerta sin resolver del mismo tipo para el artículo.
	HasUnresolved(itemID string, alertType entity.AlertType) (bool, error)
	Update(alert *entity.StockAlert) error
	ListActive(limit, offset int) ([]*entity.StockAlert, error)
	ListByItem(itemID string) ([]*entity.StockAlert, error)
}

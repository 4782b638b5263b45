package memory

import (
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre el store en memoria.
type AlertRepo struct {
	store *Store
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(store *Store) *AlertRepo {
	return &AlertRepo{store: store}
}

// Create persiste una nueva alerta.
func (r *AlertRepo) Create(alert *entity.StockAlert) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.alerts[alert.ID] = cloneAlert(alert)
	r.store.alertIDs = append(r.store.alertIDs, alert.ID)
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve nil si no existe.
func (r *AlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	alert, ok := r.store.alerts[id]
	if !ok {
		return nil, nil
	}
	return cloneAlert(alert), nil
}

// HasUnresolved indica si el artículo tiene una alerta del tipo sin resolver.
func (r *AlertRepo) HasUnresolved(itemID string, alertType entity.AlertType) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, alert := range r.store.alerts {
		if alert.ItemID == itemID && alert.Type == alertType && !alert.IsResolved {
			return true, nil
		}
	}
	return false, nil
}

// Update persiste la transición de estado de una alerta (resolución).
func (r *AlertRepo) Update(alert *entity.StockAlert) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.alerts[alert.ID]; !ok {
		return domain.ErrAlertNotFound
	}
	r.store.alerts[alert.ID] = cloneAlert(alert)
	return nil
}

// ListActive lista las alertas sin resolver en orden de creación.
func (r *AlertRepo) ListActive(limit, offset int) ([]*entity.StockAlert, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	active := make([]*entity.StockAlert, 0)
	for _, id := range r.store.alertIDs {
		if alert := r.store.alerts[id]; !alert.IsResolved {
			active = append(active, cloneAlert(alert))
		}
	}
	if offset >= len(active) {
		return []*entity.StockAlert{}, nil
	}
	active = active[offset:]
	if limit > 0 && limit < len(active) {
		active = active[:limit]
	}
	return active, nil
}

// ListByItem lista todas las alertas de un artículo en orden de creación.
func (r *AlertRepo) ListByItem(itemID string) ([]*entity.StockAlert, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.StockAlert, 0)
	for _, id := range r.store.alertIDs {
		if alert := r.store.alerts[id]; alert.ItemID == itemID {
			out = append(out, cloneAlert(alert))
		}
	}
	return out, nil
}

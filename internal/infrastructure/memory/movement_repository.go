package memory

import (
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre el store en memoria.
// Solo inserta y lee; el slice por artículo es el ledger append-only.
type MovementRepo struct {
	store *Store
}

// NewMovementRepository construye el adaptador de movimientos.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create anexa un movimiento al ledger del artículo.
func (r *MovementRepo) Create(movement *entity.InventoryMovement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movements[movement.ItemID] = append(r.store.movements[movement.ItemID], cloneMovement(movement))
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, ledger := range r.store.movements {
		for _, m := range ledger {
			if m.ID == id {
				return cloneMovement(m), nil
			}
		}
	}
	return nil, nil
}

// ListByItem devuelve el historial cronológico del artículo (orden de inserción).
func (r *MovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	ledger := r.store.movements[itemID]
	if offset >= len(ledger) {
		return []*entity.InventoryMovement{}, nil
	}
	ledger = ledger[offset:]
	if limit > 0 && limit < len(ledger) {
		ledger = ledger[:limit]
	}
	out := make([]*entity.InventoryMovement, 0, len(ledger))
	for _, m := range ledger {
		out = append(out, cloneMovement(m))
	}
	return out, nil
}

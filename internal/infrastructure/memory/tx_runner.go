package memory

import (
	"context"

	"github.com/invorya/stockledger/internal/application/inventory"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner implementa la unidad atómica por artículo sobre el store en memoria:
// mutex exclusivo por artículo sostenido durante validar-aplicar-anexar, con
// escrituras por etapas que solo se confirman si fn termina sin error. Dos
// movimientos concurrentes sobre el mismo artículo se serializan; artículos
// distintos avanzan en paralelo.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner con el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// txState acumula las escrituras pendientes de la unidad en curso.
type txState struct {
	item       *entity.InventoryItem
	stockDirty bool
	movements  []*entity.InventoryMovement
}

// Run sostiene el lock del artículo, ejecuta fn con repos por etapas y
// confirma o descarta las escrituras según el resultado.
func (r *TxRunner) Run(ctx context.Context, itemID string, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := r.store.lockFor(itemID)
	lock.Lock()
	defer lock.Unlock()

	tx := &txState{}
	itemRepo := &txItemRepo{ItemRepo: NewItemRepository(r.store), tx: tx}
	movRepo := &txMovementRepo{MovementRepo: NewMovementRepository(r.store), tx: tx}

	if err := fn(itemRepo, movRepo); err != nil {
		// Rollback: las escrituras por etapas se descartan sin tocar el store
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if tx.stockDirty && tx.item != nil {
		if current, ok := r.store.items[tx.item.ID]; ok {
			current.Quantity = tx.item.Quantity
			current.Location = tx.item.Location
			current.UpdatedAt = tx.item.UpdatedAt
			if tx.item.LastRestocked != nil {
				t := *tx.item.LastRestocked
				current.LastRestocked = &t
			}
		}
	}
	for _, m := range tx.movements {
		r.store.movements[m.ItemID] = append(r.store.movements[m.ItemID], cloneMovement(m))
	}
	return nil
}

// txItemRepo redirige GetForUpdate/UpdateStock a la copia de trabajo de la
// unidad; el resto de operaciones delega en el adaptador directo.
type txItemRepo struct {
	*ItemRepo
	tx *txState
}

func (r *txItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	if r.tx.item != nil && r.tx.item.ID == id {
		return r.tx.item, nil
	}
	item, err := r.ItemRepo.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}
	r.tx.item = item
	return item, nil
}

func (r *txItemRepo) UpdateStock(item *entity.InventoryItem) error {
	r.tx.item = item
	r.tx.stockDirty = true
	return nil
}

// txMovementRepo acumula los movimientos creados hasta el commit.
type txMovementRepo struct {
	*MovementRepo
	tx *txState
}

func (r *txMovementRepo) Create(movement *entity.InventoryMovement) error {
	r.tx.movements = append(r.tx.movements, cloneMovement(movement))
	return nil
}

package memory

import (
	"sort"
	"strings"

	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre el store en memoria.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el adaptador de artículos.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// Create persiste un nuevo artículo. El SKU debe ser único.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.skuIndex[item.SKU]; ok {
		return domain.ErrDuplicateSKU
	}
	r.store.items[item.ID] = cloneItem(item)
	r.store.skuIndex[item.SKU] = item.ID
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	item, ok := r.store.items[id]
	if !ok {
		return nil, nil
	}
	return cloneItem(item), nil
}

// GetBySKU obtiene un artículo por su SKU. Devuelve nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.skuIndex[sku]
	if !ok {
		return nil, nil
	}
	return cloneItem(r.store.items[id]), nil
}

// GetForUpdate en el adaptador directo equivale a GetByID: el bloqueo por
// artículo lo sostiene el TxRunner, no este repositorio.
func (r *ItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

// Update actualiza los campos no controlados por el ledger. Quantity, Location
// y LastRestocked se preservan del snapshot almacenado.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	next := cloneItem(item)
	next.Quantity = current.Quantity
	next.Location = current.Location
	next.LastRestocked = current.LastRestocked
	r.store.items[item.ID] = next
	return nil
}

// UpdateStock persiste el resultado de un movimiento: cantidad, ubicación,
// último reabastecimiento y fecha de actualización. Solo lo invoca el ledger.
func (r *ItemRepo) UpdateStock(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	current.Quantity = item.Quantity
	current.Location = item.Location
	current.UpdatedAt = item.UpdatedAt
	if item.LastRestocked != nil {
		t := *item.LastRestocked
		current.LastRestocked = &t
	}
	return nil
}

// Search busca coincidencia parcial sin distinguir mayúsculas sobre nombre, SKU y descripción.
func (r *ItemRepo) Search(query string, limit, offset int) ([]*entity.InventoryItem, error) {
	q := strings.ToLower(query)
	return r.collect(limit, offset, func(item *entity.InventoryItem) bool {
		return strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.SKU), q) ||
			strings.Contains(strings.ToLower(item.Description), q)
	})
}

// ListByCategory lista los artículos de una categoría.
func (r *ItemRepo) ListByCategory(category string, limit, offset int) ([]*entity.InventoryItem, error) {
	return r.collect(limit, offset, func(item *entity.InventoryItem) bool {
		return strings.EqualFold(item.Category, category)
	})
}

// List lista todos los artículos con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	return r.collect(limit, offset, func(*entity.InventoryItem) bool { return true })
}

// Delete elimina un artículo. Los movimientos y alertas se conservan (auditoría).
func (r *ItemRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item, ok := r.store.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	delete(r.store.skuIndex, item.SKU)
	delete(r.store.items, id)
	return nil
}

// collect filtra, ordena por SKU (orden estable para los tests) y pagina.
func (r *ItemRepo) collect(limit, offset int, match func(*entity.InventoryItem) bool) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.InventoryItem, 0)
	for _, item := range r.store.items {
		if match(item) {
			matched = append(matched, cloneItem(item))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SKU < matched[j].SKU })

	if offset >= len(matched) {
		return []*entity.InventoryItem{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

package repository

import "github.com/invorya/stockledger/internal/domain/entity"

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
// UpdateStock está reservado al ledger de movimientos: es la única vía para
// persistir cambios de Quantity/Location/LastRestocked.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	// GetForUpdate carga el artículo bloqueándolo contra escrituras concurrentes
	// (fila bloqueada en SQL, mutex por artículo en memoria).
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	UpdateStock(item *entity.InventoryItem) error
	Search(query string, limit, offset int) ([]*entity.InventoryItem, error)
	ListByCategory(category string, limit, offset int) ([]*entity.InventoryItem, error)
	List(limit, offset int) ([]*entity.InventoryItem, error)
	Delete(id string) error
}

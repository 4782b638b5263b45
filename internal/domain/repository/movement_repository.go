package repository

import "github.com/invorya/stockledger/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el ledger de movimientos.
// Solo inserción y lectura: los movimientos nunca se modifican ni se borran.
type MovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	// ListByItem devuelve el historial cronológico (ascendente) de un artículo.
	ListByItem(itemID string, limit, offset int) ([]*entity.InventoryMovement, error)
}

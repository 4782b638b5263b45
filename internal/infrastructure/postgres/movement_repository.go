package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, item_id, type, quantity, from_location, to_location,
		reason, reference_number, performed_by, timestamp`

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// La tabla inventory_movements es append-only: sin UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anexa un movimiento al ledger.
func (r *MovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, string(movement.Type), movement.Quantity,
		movement.FromLocation, movement.ToLocation, movement.Reason,
		movement.ReferenceNumber, movement.PerformedBy, movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE id = $1`
	var m entity.InventoryMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.FromLocation, &m.ToLocation,
		&m.Reason, &m.ReferenceNumber, &m.PerformedBy, &m.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByItem devuelve el historial cronológico (ascendente) del artículo.
// created_seq desempata movimientos con el mismo timestamp.
func (r *MovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements
		WHERE item_id = $1
		ORDER BY timestamp ASC, created_seq ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*entity.InventoryMovement, 0)
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.FromLocation, &m.ToLocation,
			&m.Reason, &m.ReferenceNumber, &m.PerformedBy, &m.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("list movements: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, item_id, type, message, is_resolved, created_at, resolved_at`

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una nueva alerta.
func (r *AlertRepo) Create(alert *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ItemID, string(alert.Type), alert.Message,
		alert.IsResolved, alert.CreatedAt, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve nil si no existe.
func (r *AlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE id = $1`
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ItemID, &a.Type, &a.Message, &a.IsResolved, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// HasUnresolved indica si el artículo tiene una alerta del tipo sin resolver.
func (r *AlertRepo) HasUnresolved(itemID string, alertType entity.AlertType) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM stock_alerts
			WHERE item_id = $1 AND type = $2 AND is_resolved = false
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, itemID, string(alertType)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check unresolved alert: %w", err)
	}
	return exists, nil
}

// Update persiste la transición de estado de una alerta (resolución).
func (r *AlertRepo) Update(alert *entity.StockAlert) error {
	query := `
		UPDATE stock_alerts
		SET is_resolved = $2, resolved_at = $3
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, alert.ID, alert.IsResolved, alert.ResolvedAt)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

// ListActive lista las alertas sin resolver en orden de creación.
func (r *AlertRepo) ListActive(limit, offset int) ([]*entity.StockAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM stock_alerts
		WHERE is_resolved = false
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListByItem lista todas las alertas de un artículo en orden de creación.
func (r *AlertRepo) ListByItem(itemID string) ([]*entity.StockAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM stock_alerts
		WHERE item_id = $1
		ORDER BY created_at ASC`
	return r.scanMany(query, itemID)
}

func (r *AlertRepo) scanMany(query string, args ...any) ([]*entity.StockAlert, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*entity.StockAlert, 0)
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(
			&a.ID, &a.ItemID, &a.Type, &a.Message, &a.IsResolved, &a.CreatedAt, &a.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("list alerts: %w", err)
		}
		alerts = append(alerts, &a)
	}
	return alerts, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de inventario.
// Lee un snapshot: no participa en las transacciones del ledger.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CountItems devuelve el total de artículos registrados.
func (r *ReportRepo) CountItems(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// GetInventoryValue devuelve Σ cantidad·costo y Σ cantidad·precio.
func (r *ReportRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
		SELECT
		    COALESCE(SUM(quantity * unit_cost),  0) AS total_cost,
		    COALESCE(SUM(quantity * unit_price), 0) AS total_retail
		FROM inventory_items`
	var totalCost, totalRetail decimal.Decimal
	err := r.q.QueryRow(ctx, query).Scan(&totalCost, &totalRetail)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return totalCost, totalRetail, nil
}

// CountByCategory agrupa el conteo de artículos por categoría, mayor conteo primero.
func (r *ReportRepo) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
		SELECT category, COUNT(*) AS item_count
		FROM inventory_items
		GROUP BY category
		ORDER BY item_count DESC, category ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	out := make([]repository.CategoryCount, 0)
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("count by category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetItemsBelowReorderPoint devuelve los artículos con cantidad <= punto de
// reorden, ordenados por mayor déficit primero.
func (r *ReportRepo) GetItemsBelowReorderPoint(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE quantity <= reorder_point
		ORDER BY (reorder_point - quantity) DESC, sku ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("items below reorder point: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.SKU, &item.Name, &item.Description, &item.Category,
			&item.Quantity, &item.Location, &item.MinimumStockLevel, &item.ReorderPoint,
			&item.UnitCost, &item.UnitPrice, &item.Supplier,
			&item.LastRestocked, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("items below reorder point: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// CountActiveAlerts devuelve el número de alertas sin resolver.
func (r *ReportRepo) CountActiveAlerts(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_alerts WHERE is_resolved = false`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active alerts: %w", err)
	}
	return count, nil
}

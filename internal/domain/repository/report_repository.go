package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/invorya/stockledger/internal/domain/entity"
)

// CategoryCount conteo de artículos por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// ReportRepository consultas de solo lectura para reportes de inventario (DIP).
// No participa en transacciones del ledger; puede leer un snapshot.
type ReportRepository interface {
	// CountItems devuelve el total de artículos registrados.
	CountItems(ctx context.Context) (int, error)
	// GetInventoryValue devuelve la valoración total: Σ cantidad·costo y Σ cantidad·precio.
	GetInventoryValue(ctx context.Context) (totalCost, totalRetail decimal.Decimal, err error)
	// CountByCategory agrupa el conteo de artículos por categoría.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	// GetItemsBelowReorderPoint devuelve los artículos con cantidad <= punto de reorden,
	// ordenados por mayor déficit primero.
	GetItemsBelowReorderPoint(ctx context.Context) ([]*entity.InventoryItem, error)
	// CountActiveAlerts devuelve el número de alertas sin resolver.
	CountActiveAlerts(ctx context.Context) (int, error)
}

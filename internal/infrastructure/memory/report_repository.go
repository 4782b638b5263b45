package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes sobre el store en memoria.
type ReportRepo struct {
	store *Store
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(store *Store) *ReportRepo {
	return &ReportRepo{store: store}
}

// CountItems devuelve el total de artículos registrados.
func (r *ReportRepo) CountItems(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.items), nil
}

// GetInventoryValue devuelve Σ cantidad·costo y Σ cantidad·precio.
func (r *ReportRepo) GetInventoryValue(_ context.Context) (decimal.Decimal, decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	totalCost := decimal.Zero
	totalRetail := decimal.Zero
	for _, item := range r.store.items {
		qty := decimal.NewFromInt(item.Quantity)
		totalCost = totalCost.Add(qty.Mul(item.UnitCost))
		totalRetail = totalRetail.Add(qty.Mul(item.UnitPrice))
	}
	return totalCost, totalRetail, nil
}

// CountByCategory agrupa el conteo de artículos por categoría, mayor conteo primero.
func (r *ReportRepo) CountByCategory(_ context.Context) ([]repository.CategoryCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	counts := make(map[string]int)
	for _, item := range r.store.items {
		counts[item.Category]++
	}
	out := make([]repository.CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, repository.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// GetItemsBelowReorderPoint devuelve los artículos con cantidad <= punto de
// reorden, ordenados por mayor déficit primero.
func (r *ReportRepo) GetItemsBelowReorderPoint(_ context.Context) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.InventoryItem, 0)
	for _, item := range r.store.items {
		if item.Quantity <= item.ReorderPoint {
			out = append(out, cloneItem(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di := out[i].ReorderPoint - out[i].Quantity
		dj := out[j].ReorderPoint - out[j].Quantity
		if di != dj {
			return di > dj
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

// CountActiveAlerts devuelve el número de alertas sin resolver.
func (r *ReportRepo) CountActiveAlerts(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	count := 0
	for _, alert := range r.store.alerts {
		if !alert.IsResolved {
			count++
		}
	}
	return count, nil
}

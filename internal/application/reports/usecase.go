// Package reports contiene los casos de uso de solo lectura para los reportes
// agregados de inventario: valoración, categorías y lista de reposición.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain/repository"
)

// ReportUseCase genera los reportes agregados sobre el snapshot del inventario.
//
// Fuente de datos: ReportRepository (consultas read-only). No muta estado y no
// necesita observar movimientos en vuelo; un snapshot es suficiente.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// ItemsToReorder devuelve los artículos con cantidad <= punto de reorden.
func (uc *ReportUseCase) ItemsToReorder(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.reportRepo.GetItemsBelowReorderPoint(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewItemResponse(item))
	}
	return out, nil
}

// InventoryValue devuelve la valoración total del inventario a costo y a precio.
func (uc *ReportUseCase) InventoryValue(ctx context.Context) (*dto.InventoryValueDTO, error) {
	totalCost, totalRetail, err := uc.reportRepo.GetInventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryValueDTO{TotalCost: totalCost, TotalRetail: totalRetail}, nil
}

// Report construye el reporte agregado completo.
//
// Tres llamadas en paralelo:
//  1. CountItems + GetInventoryValue → totales y valoración
//  2. CountByCategory               → distribución por categoría
//  3. GetItemsBelowReorderPoint + CountActiveAlerts → reposición y alertas
func (uc *ReportUseCase) Report(ctx context.Context) (*dto.InventoryReportDTO, error) {
	type valueResult struct {
		total  int
		cost   decimal.Decimal
		retail decimal.Decimal
		err    error
	}
	type categoriesResult struct {
		counts []repository.CategoryCount
		err    error
	}
	type reorderResult struct {
		items  []dto.ItemResponse
		alerts int
		err    error
	}

	valueCh := make(chan valueResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	reorderCh := make(chan reorderResult, 1)

	go func() {
		total, err := uc.reportRepo.CountItems(ctx)
		if err != nil {
			valueCh <- valueResult{err: err}
			return
		}
		cost, retail, err := uc.reportRepo.GetInventoryValue(ctx)
		valueCh <- valueResult{total: total, cost: cost, retail: retail, err: err}
	}()
	go func() {
		counts, err := uc.reportRepo.CountByCategory(ctx)
		categoriesCh <- categoriesResult{counts: counts, err: err}
	}()
	go func() {
		items, err := uc.ItemsToReorder(ctx)
		if err != nil {
			reorderCh <- reorderResult{err: err}
			return
		}
		alerts, err := uc.reportRepo.CountActiveAlerts(ctx)
		reorderCh <- reorderResult{items: items, alerts: alerts, err: err}
	}()

	value := <-valueCh
	categories := <-categoriesCh
	reorder := <-reorderCh
	for _, err := range []error{value.err, categories.err, reorder.err} {
		if err != nil {
			return nil, err
		}
	}

	profit := value.retail.Sub(value.cost)
	marginPct := decimal.Zero
	if value.retail.GreaterThan(decimal.Zero) {
		marginPct = profit.Div(value.retail).Mul(decimal.NewFromInt(100)).Round(2)
	}

	categoryDTOs := make([]dto.CategoryCountDTO, 0, len(categories.counts))
	for _, c := range categories.counts {
		pct := decimal.Zero
		if value.total > 0 {
			pct = decimal.NewFromInt(int64(c.Count * 100)).
				Div(decimal.NewFromInt(int64(value.total))).Round(2)
		}
		categoryDTOs = append(categoryDTOs, dto.CategoryCountDTO{
			Category:   c.Category,
			Count:      c.Count,
			Percentage: pct,
		})
	}

	return &dto.InventoryReportDTO{
		TotalItems:       value.total,
		Value:            dto.InventoryValueDTO{TotalCost: value.cost, TotalRetail: value.retail},
		Profit:           profit,
		ProfitMarginPct:  marginPct,
		Categories:       categoryDTOs,
		ItemsToReorder:   reorder.items,
		ActiveAlertCount: reorder.alerts,
		GeneratedAt:      time.Now(),
	}, nil
}

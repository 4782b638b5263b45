package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryValueDTO valoración total del inventario.
type InventoryValueDTO struct {
	TotalCost   decimal.Decimal `json:"total_cost"`   // Σ cantidad · costo unitario
	TotalRetail decimal.Decimal `json:"total_retail"` // Σ cantidad · precio unitario
}

// CategoryCountDTO conteo de artículos por categoría con porcentaje del total.
type CategoryCountDTO struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// InventoryReportDTO reporte agregado de inventario.
type InventoryReportDTO struct {
	TotalItems       int                `json:"total_items"`
	Value            InventoryValueDTO  `json:"value"`
	Profit           decimal.Decimal    `json:"profit"`            // TotalRetail - TotalCost
	ProfitMarginPct  decimal.Decimal    `json:"profit_margin_pct"` // Profit / TotalRetail * 100
	Categories       []CategoryCountDTO `json:"categories"`
	ItemsToReorder   []ItemResponse     `json:"items_to_reorder"`
	ActiveAlertCount int                `json:"active_alert_count"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

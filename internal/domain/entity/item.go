package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo (SKU) del inventario con su snapshot actual.
// Quantity y Location son propiedad exclusiva del ledger de movimientos: nunca se
// modifican directamente, solo a través de un movimiento registrado.
type InventoryItem struct {
	ID                string
	SKU               string // código único de negocio
	Name              string
	Description       string
	Category          string
	Quantity          int64 // siempre >= 0
	Location          string
	MinimumStockLevel int64 // umbral de alerta de stock bajo
	ReorderPoint      int64 // umbral de reposición
	UnitCost          decimal.Decimal
	UnitPrice         decimal.Decimal
	Supplier          string
	LastRestocked     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

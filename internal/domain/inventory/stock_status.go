package inventory

import "github.com/invorya/stockledger/internal/domain/entity"

// StockStatus clasificación de salud de stock de un artículo (servicio de dominio).
type StockStatus string

// Estados posibles según cantidad actual vs nivel mínimo.
const (
	StatusOutOfStock StockStatus = "out_of_stock" // cantidad == 0
	StatusLowStock   StockStatus = "low_stock"    // 0 < cantidad <= nivel mínimo
	StatusNormal     StockStatus = "normal"
)

// Classify deriva el estado de stock como función pura del snapshot actual.
func Classify(item *entity.InventoryItem) StockStatus {
	switch {
	case item.Quantity == 0:
		return StatusOutOfStock
	case item.Quantity <= item.MinimumStockLevel:
		return StatusLowStock
	default:
		return StatusNormal
	}
}

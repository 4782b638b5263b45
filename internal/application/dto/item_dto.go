package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo de inventario.
// La cantidad inicial se acepta aquí una sola vez; después solo cambia vía movimientos.
type CreateItemRequest struct {
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	Category          string          `json:"category" validate:"required,min=1,max=100"`
	Quantity          int64           `json:"quantity" validate:"min=0"`
	Location          string          `json:"location"`
	MinimumStockLevel int64           `json:"minimum_stock_level" validate:"min=0"`
	ReorderPoint      int64           `json:"reorder_point" validate:"min=0"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Supplier          string          `json:"supplier"`
}

// UpdateItemRequest entrada para actualizar un artículo (campos parciales).
// Quantity y Location no aparecen a propósito: se cambian solo vía movimientos.
type UpdateItemRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	Category          *string          `json:"category" validate:"omitempty,min=1,max=100"`
	MinimumStockLevel *int64           `json:"minimum_stock_level" validate:"omitempty,min=0"`
	ReorderPoint      *int64           `json:"reorder_point" validate:"omitempty,min=0"`
	UnitCost          *decimal.Decimal `json:"unit_cost"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	Supplier          *string          `json:"supplier"`
}

// ItemResponse salida de un artículo con su estado de stock derivado.
type ItemResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Quantity          int64           `json:"quantity"`
	Location          string          `json:"location"`
	MinimumStockLevel int64           `json:"minimum_stock_level"`
	ReorderPoint      int64           `json:"reorder_point"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Supplier          string          `json:"supplier"`
	StockStatus       string          `json:"stock_status"`
	LastRestocked     *time.Time      `json:"last_restocked,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

package dto

import (
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/inventory"
)

// NewItemResponse mapea la entidad al DTO de salida, derivando el estado de stock.
func NewItemResponse(item *entity.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:                item.ID,
		SKU:               item.SKU,
		Name:              item.Name,
		Description:       item.Description,
		Category:          item.Category,
		Quantity:          item.Quantity,
		Location:          item.Location,
		MinimumStockLevel: item.MinimumStockLevel,
		ReorderPoint:      item.ReorderPoint,
		UnitCost:          item.UnitCost,
		UnitPrice:         item.UnitPrice,
		Supplier:          item.Supplier,
		StockStatus:       string(inventory.Classify(item)),
		LastRestocked:     item.LastRestocked,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

// NewMovementResponse mapea un movimiento del ledger al DTO de salida.
func NewMovementResponse(m *entity.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		ItemID:          m.ItemID,
		Type:            string(m.Type),
		Quantity:        m.Quantity,
		FromLocation:    m.FromLocation,
		ToLocation:      m.ToLocation,
		Reason:          m.Reason,
		ReferenceNumber: m.ReferenceNumber,
		PerformedBy:     m.PerformedBy,
		Timestamp:       m.Timestamp,
	}
}

// NewAlertResponse mapea una alerta al DTO de salida.
func NewAlertResponse(a *entity.StockAlert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		ItemID:     a.ItemID,
		Type:       string(a.Type),
		Message:    a.Message,
		IsResolved: a.IsResolved,
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}

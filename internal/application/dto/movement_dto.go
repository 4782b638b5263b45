package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// from_location y to_location solo aplican (y son obligatorios) para type=transfer.
type RegisterMovementRequest struct {
	ItemID          string `json:"item_id" validate:"required"`
	Type            string `json:"type" validate:"required,oneof=in out transfer adjustment"`
	Quantity        int64  `json:"quantity"`
	FromLocation    string `json:"from_location,omitempty"`
	ToLocation      string `json:"to_location,omitempty"`
	Reason          string `json:"reason" validate:"required,min=1,max=500"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	PerformedBy     string `json:"performed_by" validate:"required,min=1,max=100"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	Type            string    `json:"type"`
	Quantity        int64     `json:"quantity"`
	FromLocation    string    `json:"from_location,omitempty"`
	ToLocation      string    `json:"to_location,omitempty"`
	Reason          string    `json:"reason"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	PerformedBy     string    `json:"performed_by"`
	Timestamp       time.Time `json:"timestamp"`
}

// RegisterMovementResponse resultado de registrar un movimiento:
// el movimiento inmutable más el snapshot actualizado del artículo.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Item     ItemResponse     `json:"item"`
}

// MovementListResponse historial de movimientos de un artículo.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Page      PageResponse       `json:"page"`
}

package entity

import "time"

// MovementType tipo cerrado de movimiento de inventario.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementIn         MovementType = "in"         // entrada: suma cantidad
	MovementOut        MovementType = "out"        // salida: resta cantidad
	MovementTransfer   MovementType = "transfer"   // traslado: cambia ubicación, no cantidad
	MovementAdjustment MovementType = "adjustment" // ajuste: fija cantidad absoluta
)

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer, MovementAdjustment:
		return true
	}
	return false
}

// InventoryMovement representa un movimiento registrado en el ledger.
// Inmutable una vez creado; el historial por artículo es append-only y
// reproducir todos los movimientos desde cero debe dar la cantidad actual.
type InventoryMovement struct {
	ID              string
	ItemID          string
	Type            MovementType
	Quantity        int64
	FromLocation    string // solo TRANSFER
	ToLocation      string // solo TRANSFER
	Reason          string
	ReferenceNumber string
	PerformedBy     string
	Timestamp       time.Time
}

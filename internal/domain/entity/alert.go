package entity

import "time"

// AlertType tipo de alerta de stock.
type AlertType string

// Tipos de alerta de stock.
const (
	AlertLowStock  AlertType = "low_stock"
	AlertOverstock AlertType = "overstock"
	AlertExpiring  AlertType = "expiring"
)

// StockAlert representa una alerta generada por el motor de alertas tras un movimiento.
// Nunca se elimina; se resuelve explícitamente por decisión del caller.
// ResolvedAt está presente si y solo si IsResolved es true.
type StockAlert struct {
	ID         string
	ItemID     string
	Type       AlertType
	Message    string
	IsResolved bool
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

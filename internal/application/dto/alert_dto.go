package dto

import "time"

// AlertResponse salida de una alerta de stock.
type AlertResponse struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	IsResolved bool       `json:"is_resolved"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// AlertListResponse lista de alertas.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Total  int             `json:"total"`
}

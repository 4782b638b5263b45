package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound            = errors.New("artículo no encontrado")
	ErrAlertNotFound           = errors.New("alerta no encontrada")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrDuplicateSKU            = errors.New("el SKU ya está registrado")
	ErrInsufficientStock       = errors.New("stock insuficiente")
	ErrMissingTransferLocation = errors.New("traslado requiere ubicación de origen y destino")
	ErrAlreadyResolved         = errors.New("la alerta ya fue resuelta")
)

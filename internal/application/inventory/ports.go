package inventory

import (
	"context"

	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una unidad atómica por artículo,
// pasando repositorios atados a esa unidad. Garantiza que validar, aplicar el
// efecto y anexar el movimiento sean un solo paso serializable por artículo:
// dos movimientos concurrentes sobre el mismo artículo nunca leen la misma
// cantidad de partida. Movimientos sobre artículos distintos avanzan en paralelo.
type TxRunner interface {
	Run(ctx context.Context, itemID string, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// AlertEvaluator es el contrato mínimo del motor de alertas que necesita el
// ledger. Se invoca después del commit del movimiento, nunca dentro de la
// transacción. El uso de interfaz evita acoplar los paquetes.
type AlertEvaluator interface {
	Evaluate(item *entity.InventoryItem) error
}

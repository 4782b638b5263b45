package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
	"github.com/invorya/stockledger/pkg/logger"
)

// LedgerUseCase es la única vía autorizada para cambiar cantidad/ubicación de
// un artículo. Cada cambio queda precedido por exactamente un movimiento
// inmutable en el ledger; no existe ruta de mutación silenciosa.
type LedgerUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	alerts   AlertEvaluator
	log      *logger.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	alerts AlertEvaluator,
	log *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
		alerts:   alerts,
		log:      log,
	}
}

// MovementInput entrada para registrar un movimiento.
// Para transfer: FromLocation y ToLocation obligatorios; la cantidad no cambia.
// Para adjustment: Quantity es el valor absoluto final, no un delta.
type MovementInput struct {
	ItemID          string
	Type            entity.MovementType
	Quantity        int64
	FromLocation    string
	ToLocation      string
	Reason          string
	ReferenceNumber string
	PerformedBy     string
}

// movementEffect valida y aplica el efecto de un tipo de movimiento sobre el
// snapshot del artículo. Un tipo nuevo se agrega registrándolo en la tabla
// movementEffects; no hay cadena de if/else que mantener.
type movementEffect struct {
	validate func(item *entity.InventoryItem, in MovementInput) error
	apply    func(item *entity.InventoryItem, in MovementInput, now time.Time)
}

var movementEffects = map[entity.MovementType]movementEffect{
	entity.MovementIn: {
		validate: func(_ *entity.InventoryItem, in MovementInput) error {
			if in.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			return nil
		},
		apply: func(item *entity.InventoryItem, in MovementInput, now time.Time) {
			item.Quantity += in.Quantity
			item.LastRestocked = &now
		},
	},
	entity.MovementOut: {
		validate: func(item *entity.InventoryItem, in MovementInput) error {
			if in.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			if item.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			return nil
		},
		apply: func(item *entity.InventoryItem, in MovementInput, _ time.Time) {
			item.Quantity -= in.Quantity
		},
	},
	entity.MovementTransfer: {
		validate: func(_ *entity.InventoryItem, in MovementInput) error {
			if in.FromLocation == "" || in.ToLocation == "" {
				return domain.ErrMissingTransferLocation
			}
			return nil
		},
		apply: func(item *entity.InventoryItem, in MovementInput, _ time.Time) {
			// Cambia ubicación, nunca cantidad
			item.Location = in.ToLocation
		},
	},
	entity.MovementAdjustment: {
		validate: func(_ *entity.InventoryItem, in MovementInput) error {
			if in.Quantity < 0 {
				return domain.ErrInvalidInput
			}
			return nil
		},
		apply: func(item *entity.InventoryItem, in MovementInput, now time.Time) {
			if in.Quantity > item.Quantity {
				item.LastRestocked = &now
			}
			item.Quantity = in.Quantity
		},
	},
}

// RecordMovement valida y aplica un movimiento de forma atómica: carga el
// artículo con bloqueo, valida según el tipo, persiste el snapshot y anexa el
// registro inmutable, todo en la misma unidad transaccional. Ningún fallo deja
// estado parcial. Tras el commit evalúa alertas sobre el artículo actualizado.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in MovementInput) (*dto.RegisterMovementResponse, error) {
	effect, ok := movementEffects[in.Type]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	var (
		movement *entity.InventoryMovement
		updated  *entity.InventoryItem
	)
	err := uc.txRunner.Run(ctx, in.ItemID, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if err := effect.validate(item, in); err != nil {
			return err
		}

		now := time.Now()
		effect.apply(item, in, now)
		item.UpdatedAt = now
		if err := itemRepo.UpdateStock(item); err != nil {
			return err
		}

		movement = &entity.InventoryMovement{
			ID:              uuid.New().String(),
			ItemID:          item.ID,
			Type:            in.Type,
			Quantity:        in.Quantity,
			Reason:          in.Reason,
			ReferenceNumber: in.ReferenceNumber,
			PerformedBy:     in.PerformedBy,
			Timestamp:       now,
		}
		if in.Type == entity.MovementTransfer {
			movement.FromLocation = in.FromLocation
			movement.ToLocation = in.ToLocation
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("movement_id", movement.ID).
		Str("item_id", updated.ID).
		Str("type", string(in.Type)).
		Int64("quantity", in.Quantity).
		Int64("stock", updated.Quantity).
		Msg("movimiento registrado")

	// Evaluación de alertas fuera de la transacción: el movimiento ya está
	// confirmado y un fallo aquí no debe revertirlo ni propagarse al caller.
	if err := uc.alerts.Evaluate(updated); err != nil {
		uc.log.Error().Err(err).Str("item_id", updated.ID).Msg("evaluación de alertas")
	}

	return &dto.RegisterMovementResponse{
		Movement: dto.NewMovementResponse(movement),
		Item:     dto.NewItemResponse(updated),
	}, nil
}

// MovementsForItem devuelve el historial cronológico de movimientos de un artículo.
func (uc *LedgerUseCase) MovementsForItem(itemID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movements, err := uc.movRepo.ListByItem(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Movements: out,
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	}, nil
}

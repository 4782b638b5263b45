package inventory

import (
	"context"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain/entity"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). Usar desde handlers HTTP.
func (uc *LedgerUseCase) RecordMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	input := MovementInput{
		ItemID:          in.ItemID,
		Type:            entity.MovementType(in.Type),
		Quantity:        in.Quantity,
		FromLocation:    in.FromLocation,
		ToLocation:      in.ToLocation,
		Reason:          in.Reason,
		ReferenceNumber: in.ReferenceNumber,
		PerformedBy:     in.PerformedBy,
	}
	return uc.RecordMovement(ctx, input)
}

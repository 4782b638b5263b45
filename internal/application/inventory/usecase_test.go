package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockledger/internal/application/alerts"
	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/application/inventory"
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/infrastructure/memory"
	"github.com/invorya/stockledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type ledgerFixture struct {
	store   *memory.Store
	ledger  *inventory.LedgerUseCase
	alerts  *alerts.AlertUseCase
	itemIDs map[string]string // sku -> id
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	store := memory.NewStore()
	alertUC := alerts.NewAlertUseCase(memory.NewAlertRepository(store), logger.Nop())
	ledgerUC := inventory.NewLedgerUseCase(
		memory.NewTxRunner(store),
		memory.NewMovementRepository(store),
		alertUC,
		logger.Nop(),
	)
	return &ledgerFixture{
		store:   store,
		ledger:  ledgerUC,
		alerts:  alertUC,
		itemIDs: make(map[string]string),
	}
}

// seedItem crea un artículo directamente en el store y devuelve su ID.
func (f *ledgerFixture) seedItem(t *testing.T, sku string, quantity, minimum, reorder int64) string {
	t.Helper()
	now := time.Now()
	item := &entity.InventoryItem{
		ID:                uuid.New().String(),
		SKU:               sku,
		Name:              "Artículo " + sku,
		Category:          "general",
		Quantity:          quantity,
		Location:          "bodega-principal",
		MinimumStockLevel: minimum,
		ReorderPoint:      reorder,
		UnitCost:          decimal.NewFromInt(10),
		UnitPrice:         decimal.NewFromInt(15),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, memory.NewItemRepository(f.store).Create(item))
	f.itemIDs[sku] = item.ID
	return item.ID
}

func (f *ledgerFixture) quantityOf(t *testing.T, itemID string) int64 {
	t.Helper()
	item, err := memory.NewItemRepository(f.store).GetByID(itemID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func movementInput(itemID string, typ entity.MovementType, qty int64) inventory.MovementInput {
	return inventory.MovementInput{
		ItemID:      itemID,
		Type:        typ,
		Quantity:    qty,
		Reason:      "test",
		PerformedBy: "tester",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovementOutCreaAlertaDeStockBajo(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-A", 10, 5, 5)

	result, err := f.ledger.RecordMovement(context.Background(), movementInput(itemID, entity.MovementOut, 6))
	require.NoError(t, err)

	assert.Equal(t, int64(4), result.Item.Quantity)
	assert.Equal(t, "low_stock", result.Item.StockStatus)

	active, err := f.alerts.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, active.Alerts, 1)
	assert.Equal(t, itemID, active.Alerts[0].ItemID)
	assert.Equal(t, "low_stock", active.Alerts[0].Type)
	assert.False(t, active.Alerts[0].IsResolved)
}

func TestRecordMovementOutConStockInsuficienteNoMutaNada(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-B", 4, 5, 5)

	_, err := f.ledger.RecordMovement(context.Background(), movementInput(itemID, entity.MovementOut, 10))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La cantidad no cambia y el ledger no creció
	assert.Equal(t, int64(4), f.quantityOf(t, itemID))
	history, err := f.ledger.MovementsForItem(itemID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, history.Movements)
}

func TestRecordMovementTransferSinDestinoFalla(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-C", 10, 2, 2)

	in := movementInput(itemID, entity.MovementTransfer, 10)
	in.FromLocation = "bodega-principal"
	// ToLocation omitido a propósito
	_, err := f.ledger.RecordMovement(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrMissingTransferLocation)

	item, getErr := memory.NewItemRepository(f.store).GetByID(itemID)
	require.NoError(t, getErr)
	assert.Equal(t, "bodega-principal", item.Location)
	assert.Equal(t, int64(10), item.Quantity)
}

func TestRecordMovementTransferCambiaUbicacionNoCantidad(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-C2", 10, 2, 2)

	in := movementInput(itemID, entity.MovementTransfer, 10)
	in.FromLocation = "bodega-principal"
	in.ToLocation = "bodega-norte"
	result, err := f.ledger.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "bodega-norte", result.Item.Location)
	assert.Equal(t, int64(10), result.Item.Quantity)
	assert.Equal(t, "bodega-principal", result.Movement.FromLocation)
	assert.Equal(t, "bodega-norte", result.Movement.ToLocation)
}

func TestRecordMovementAdjustmentFijaCantidadAbsoluta(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-D", 4, 2, 2)

	result, err := f.ledger.RecordMovement(context.Background(), movementInput(itemID, entity.MovementAdjustment, 50))
	require.NoError(t, err)

	// 50, no 54: el ajuste fija el valor, no suma
	assert.Equal(t, int64(50), result.Item.Quantity)
	require.NotNil(t, result.Item.LastRestocked)
}

func TestRecordMovementInSumaYMarcaReabastecimiento(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-E", 3, 2, 2)

	result, err := f.ledger.RecordMovement(context.Background(), movementInput(itemID, entity.MovementIn, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Item.Quantity)
	require.NotNil(t, result.Item.LastRestocked)
}

func TestRecordMovementValidaciones(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-F", 10, 2, 2)

	cases := []struct {
		name    string
		input   inventory.MovementInput
		wantErr error
	}{
		{"entrada con cantidad cero", movementInput(itemID, entity.MovementIn, 0), domain.ErrInvalidInput},
		{"salida con cantidad negativa", movementInput(itemID, entity.MovementOut, -3), domain.ErrInvalidInput},
		{"ajuste negativo", movementInput(itemID, entity.MovementAdjustment, -1), domain.ErrInvalidInput},
		{"tipo desconocido", movementInput(itemID, entity.MovementType("destroy"), 1), domain.ErrInvalidInput},
		{"artículo inexistente", movementInput(uuid.New().String(), entity.MovementIn, 1), domain.ErrItemNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ledger.RecordMovement(context.Background(), tc.input)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Ninguna validación fallida dejó rastro en el ledger
	history, err := f.ledger.MovementsForItem(itemID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, history.Movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// TestLedgerReplay reproduce todos los movimientos de un artículo desde cero y
// verifica que el resultado coincide con la cantidad actual.
func TestLedgerReplay(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-R", 0, 2, 2)
	ctx := context.Background()

	steps := []inventory.MovementInput{
		movementInput(itemID, entity.MovementIn, 20),
		movementInput(itemID, entity.MovementOut, 5),
		movementInput(itemID, entity.MovementAdjustment, 30),
		movementInput(itemID, entity.MovementOut, 12),
		movementInput(itemID, entity.MovementIn, 4),
	}
	transfer := movementInput(itemID, entity.MovementTransfer, 0)
	transfer.FromLocation = "bodega-principal"
	transfer.ToLocation = "bodega-sur"
	steps = append(steps, transfer)

	for _, in := range steps {
		_, err := f.ledger.RecordMovement(ctx, in)
		require.NoError(t, err)
	}

	history, err := f.ledger.MovementsForItem(itemID, dto.PageRequest{Limit: 100})
	require.NoError(t, err)
	require.Len(t, history.Movements, len(steps))

	var replayed int64
	for _, m := range history.Movements {
		switch entity.MovementType(m.Type) {
		case entity.MovementIn:
			replayed += m.Quantity
		case entity.MovementOut:
			replayed -= m.Quantity
		case entity.MovementAdjustment:
			replayed = m.Quantity
		case entity.MovementTransfer:
			// no afecta cantidad
		}
	}
	assert.Equal(t, f.quantityOf(t, itemID), replayed)
	assert.GreaterOrEqual(t, replayed, int64(0))
}

// TestMovementsForItemEsIdempotente lecturas repetidas sin escrituras devuelven lo mismo.
func TestMovementsForItemEsIdempotente(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-I", 10, 2, 2)
	ctx := context.Background()

	_, err := f.ledger.RecordMovement(ctx, movementInput(itemID, entity.MovementOut, 3))
	require.NoError(t, err)

	first, err := f.ledger.MovementsForItem(itemID, dto.PageRequest{})
	require.NoError(t, err)
	second, err := f.ledger.MovementsForItem(itemID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestRecordMovementConcurrente dos salidas simultáneas de 6 sobre stock 10:
// exactamente una gana, la otra falla con stock insuficiente.
func TestRecordMovementConcurrente(t *testing.T) {
	f := newLedgerFixture(t)
	itemID := f.seedItem(t, "SKU-X", 10, 2, 2)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, err := f.ledger.RecordMovement(ctx, movementInput(itemID, entity.MovementOut, 6))
			results[slot] = err
		}(i)
	}
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficient, "la otra debe fallar con stock insuficiente")
	assert.Equal(t, int64(4), f.quantityOf(t, itemID))

	history, err := f.ledger.MovementsForItem(itemID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, history.Movements, 1)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

func seedItem(t *testing.T, repo *ItemRepo, id, sku string, qty int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, repo.Create(&entity.InventoryItem{
		ID:        id,
		SKU:       sku,
		Name:      "Artículo " + sku,
		Category:  "general",
		Quantity:  qty,
		UnitCost:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(2),
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

// Las lecturas devuelven copias: mutar el resultado no toca el store.
func TestGetByIDDevuelveCopia(t *testing.T) {
	repo := NewItemRepository(NewStore())
	seedItem(t, repo, "id-1", "SKU-1", 10)

	item, err := repo.GetByID("id-1")
	require.NoError(t, err)
	item.Quantity = 999
	item.SKU = "MUTADO"

	stored, err := repo.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Quantity)
	assert.Equal(t, "SKU-1", stored.SKU)
}

func TestCreateSKUDuplicado(t *testing.T) {
	repo := NewItemRepository(NewStore())
	seedItem(t, repo, "id-1", "SKU-1", 10)

	err := repo.Create(&entity.InventoryItem{ID: "id-2", SKU: "SKU-1"})
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

// Update preserva los campos reservados al ledger de movimientos.
func TestUpdateNoTocaStockNiUbicacion(t *testing.T) {
	store := NewStore()
	repo := NewItemRepository(store)
	seedItem(t, repo, "id-1", "SKU-1", 10)

	item, err := repo.GetByID("id-1")
	require.NoError(t, err)
	item.Name = "Renombrado"
	item.Quantity = 999
	item.Location = "otra-bodega"
	require.NoError(t, repo.Update(item))

	stored, err := repo.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", stored.Name)
	assert.Equal(t, int64(10), stored.Quantity, "la cantidad solo cambia vía UpdateStock")
	assert.Empty(t, stored.Location)
}

func TestDeleteInexistente(t *testing.T) {
	repo := NewItemRepository(NewStore())
	require.ErrorIs(t, repo.Delete("nada"), domain.ErrItemNotFound)
}

// Un error dentro de la unidad transaccional descarta todo lo preparado.
func TestTxRunnerRollback(t *testing.T) {
	store := NewStore()
	itemRepo := NewItemRepository(store)
	seedItem(t, itemRepo, "id-1", "SKU-1", 10)

	runner := NewTxRunner(store)
	err := runner.Run(context.Background(), "id-1", func(
		items repository.ItemRepository,
		movements repository.MovementRepository,
	) error {
		item, err := items.GetForUpdate("id-1")
		if err != nil {
			return err
		}
		item.Quantity = 0
		if err := items.UpdateStock(item); err != nil {
			return err
		}
		if err := movements.Create(&entity.InventoryMovement{ID: "m-1", ItemID: "id-1"}); err != nil {
			return err
		}
		return domain.ErrInvalidInput
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := itemRepo.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Quantity)

	movs, err := NewMovementRepository(store).ListByItem("id-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

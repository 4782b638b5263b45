package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/application/usecase"
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/infrastructure/memory"
)

func newItemUC() *usecase.ItemUseCase {
	return usecase.NewItemUseCase(memory.NewItemRepository(memory.NewStore()))
}

func createRequest(sku string) dto.CreateItemRequest {
	return dto.CreateItemRequest{
		SKU:               sku,
		Name:              "Tornillo M8",
		Description:       "Tornillo hexagonal M8 x 40mm",
		Category:          "ferretería",
		Quantity:          25,
		Location:          "bodega-principal",
		MinimumStockLevel: 5,
		ReorderPoint:      10,
		UnitCost:          decimal.NewFromFloat(0.50),
		UnitPrice:         decimal.NewFromFloat(1.20),
		Supplier:          "Aceros del Norte",
	}
}

func TestCreateItem(t *testing.T) {
	uc := newItemUC()

	item, err := uc.Create(createRequest("TOR-M8-40"))
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "TOR-M8-40", item.SKU)
	assert.Equal(t, int64(25), item.Quantity)
	assert.Equal(t, "normal", item.StockStatus)
	require.NotNil(t, item.LastRestocked, "cantidad inicial > 0 cuenta como reabastecimiento")

	got, err := uc.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.SKU, got.SKU)
}

func TestCreateItemSinStockInicial(t *testing.T) {
	uc := newItemUC()

	in := createRequest("TOR-M8-41")
	in.Quantity = 0
	item, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "out_of_stock", item.StockStatus)
	assert.Nil(t, item.LastRestocked)
}

func TestCreateItemSKUDuplicado(t *testing.T) {
	uc := newItemUC()

	_, err := uc.Create(createRequest("TOR-M8-40"))
	require.NoError(t, err)
	_, err = uc.Create(createRequest("TOR-M8-40"))
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestCreateItemEntradaInvalida(t *testing.T) {
	uc := newItemUC()

	in := createRequest("TOR-NEG")
	in.Quantity = -1
	_, err := uc.Create(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	in = createRequest("TOR-NEG")
	in.UnitCost = decimal.NewFromInt(-5)
	_, err = uc.Create(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByIDInexistente(t *testing.T) {
	uc := newItemUC()
	_, err := uc.GetByID(uuid.New().String())
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUpdateItemParcial(t *testing.T) {
	uc := newItemUC()
	created, err := uc.Create(createRequest("TOR-M8-40"))
	require.NoError(t, err)

	name := "Tornillo M8 galvanizado"
	minimum := int64(8)
	updated, err := uc.Update(created.ID, dto.UpdateItemRequest{
		Name:              &name,
		MinimumStockLevel: &minimum,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo M8 galvanizado", updated.Name)
	assert.Equal(t, int64(8), updated.MinimumStockLevel)
	// Lo no enviado queda intacto
	assert.Equal(t, "ferretería", updated.Category)
	assert.Equal(t, int64(25), updated.Quantity)
}

func TestUpdateItemNivelNegativo(t *testing.T) {
	uc := newItemUC()
	created, err := uc.Create(createRequest("TOR-M8-40"))
	require.NoError(t, err)

	bad := int64(-2)
	_, err = uc.Update(created.ID, dto.UpdateItemRequest{ReorderPoint: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateItemInexistente(t *testing.T) {
	uc := newItemUC()
	name := "x"
	_, err := uc.Update(uuid.New().String(), dto.UpdateItemRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteItem(t *testing.T) {
	uc := newItemUC()
	created, err := uc.Create(createRequest("TOR-M8-40"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	require.ErrorIs(t, uc.Delete(created.ID), domain.ErrItemNotFound)
}

func TestListConBusquedaYCategoria(t *testing.T) {
	uc := newItemUC()

	first := createRequest("TOR-M8-40")
	_, err := uc.Create(first)
	require.NoError(t, err)

	second := createRequest("CAB-UTP-305")
	second.Name = "Cable UTP Cat6"
	second.Description = "Bobina 305m"
	second.Category = "redes"
	_, err = uc.Create(second)
	require.NoError(t, err)

	// Búsqueda parcial sin distinguir mayúsculas sobre nombre/sku/descripción
	result, err := uc.List("tornillo", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "TOR-M8-40", result.Items[0].SKU)

	result, err = uc.List("", "REDES", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "CAB-UTP-305", result.Items[0].SKU)

	result, err = uc.List("", "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)

	result, err = uc.List("", "", dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

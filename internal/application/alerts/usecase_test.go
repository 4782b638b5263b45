package alerts_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockledger/internal/application/alerts"
	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/infrastructure/memory"
	"github.com/invorya/stockledger/pkg/logger"
)

func newAlertUC() *alerts.AlertUseCase {
	store := memory.NewStore()
	return alerts.NewAlertUseCase(memory.NewAlertRepository(store), logger.Nop())
}

func itemWithStock(quantity, minimum int64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:                uuid.New().String(),
		SKU:               "SKU-TEST",
		Name:              "Artículo de prueba",
		Quantity:          quantity,
		MinimumStockLevel: minimum,
	}
}

func TestEvaluateCreaAlertaConStockBajo(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(3, 5)

	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, active.Alerts, 1)
	assert.Equal(t, item.ID, active.Alerts[0].ItemID)
	assert.Equal(t, string(entity.AlertLowStock), active.Alerts[0].Type)
	assert.Contains(t, active.Alerts[0].Message, "SKU-TEST")
}

func TestEvaluateSinExistenciasCreaAlerta(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(0, 5)

	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, active.Alerts, 1)
	assert.Contains(t, active.Alerts[0].Message, "sin existencias")
}

func TestEvaluateNoDuplicaAlertaAbierta(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(3, 5)

	require.NoError(t, uc.Evaluate(item))
	item.Quantity = 2
	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, active.Alerts, 1, "una sola alerta abierta por artículo")
}

func TestEvaluateConStockNormalNoHaceNada(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(50, 5)

	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, active.Alerts)
}

// Reponer stock no resuelve la alerta sola: tras volver a normal la alerta
// sigue abierta hasta que alguien la resuelva explícitamente.
func TestEvaluateNoAutoResuelve(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(3, 5)

	require.NoError(t, uc.Evaluate(item))
	item.Quantity = 100
	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, active.Alerts, 1)
}

func TestResolve(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(3, 5)
	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, active.Alerts, 1)
	alertID := active.Alerts[0].ID

	resolved, err := uc.Resolve(alertID)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *resolved.ResolvedAt, time.Minute)

	// Ya no aparece entre las activas, pero sí en el historial del artículo
	active, err = uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, active.Alerts)

	history, err := uc.AlertsForItem(item.ID)
	require.NoError(t, err)
	assert.Len(t, history.Alerts, 1)
}

func TestResolveAlertaYaResuelta(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(3, 5)
	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	alertID := active.Alerts[0].ID

	_, err = uc.Resolve(alertID)
	require.NoError(t, err)
	_, err = uc.Resolve(alertID)
	require.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestResolveAlertaInexistente(t *testing.T) {
	uc := newAlertUC()
	_, err := uc.Resolve(uuid.New().String())
	require.ErrorIs(t, err, domain.ErrAlertNotFound)
}

// Tras resolver, una nueva caída de stock vuelve a generar alerta.
func TestEvaluateTrasResolverCreaNuevaAlerta(t *testing.T) {
	uc := newAlertUC()
	item := itemWithStock(3, 5)
	require.NoError(t, uc.Evaluate(item))

	active, err := uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	_, err = uc.Resolve(active.Alerts[0].ID)
	require.NoError(t, err)

	item.Quantity = 1
	require.NoError(t, uc.Evaluate(item))

	active, err = uc.ActiveAlerts(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, active.Alerts, 1)

	history, err := uc.AlertsForItem(item.ID)
	require.NoError(t, err)
	assert.Len(t, history.Alerts, 2)
}

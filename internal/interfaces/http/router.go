package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockledger/internal/application/alerts"
	"github.com/invorya/stockledger/internal/application/inventory"
	"github.com/invorya/stockledger/internal/application/reports"
	"github.com/invorya/stockledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC   *usecase.ItemUseCase
	LedgerUC *inventory.LedgerUseCase
	AlertUC  *alerts.AlertUseCase
	ReportUC *reports.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items (CRUD sin cantidad/ubicación)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Ledger de movimientos
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	api.Post("/inventory/movements", inventoryHandler.RegisterMovement)
	items.Get("/:id/movements", inventoryHandler.ListMovements)

	// Alertas de stock
	alertHandler := NewAlertHandler(deps.AlertUC)
	api.Get("/alerts", alertHandler.ListActive)
	api.Post("/alerts/:id/resolve", alertHandler.Resolve)
	items.Get("/:id/alerts", alertHandler.ListByItem)

	// Reportes (solo lectura)
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/reorder", reportHandler.Reorder)
	reportsGroup.Get("/value", reportHandler.Value)
	reportsGroup.Get("/inventory", reportHandler.Report)
}
